package draft

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dErrors "bloodnet/pkg/domain-errors"
)

var now = time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

func completeDonor() DonorRegistration {
	return DonorRegistration{
		FullName:     "Rajesh Kumar",
		Age:          "28",
		Gender:       "Male",
		BloodGroup:   "O+",
		District:     "Chennai",
		MobileNumber: "+91 9876543210",
		LastDonated:  "2023-12-15",
		Agreement:    true,
	}
}

func completeEmergency() EmergencyRequestDraft {
	d := EmptyEmergencyRequest()
	d.PatientName = "Anitha"
	d.HospitalName = "Apollo Hospital"
	d.HospitalLocation = "Greams Road, Chennai"
	d.District = "Chennai"
	d.BloodGroup = "O-"
	d.UnitsNeeded = "2"
	d.ContactNumber = "+91 9876543213"
	return d
}

func fields(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

type ApplySuite struct {
	suite.Suite
}

func TestApplySuite(t *testing.T) {
	suite.Run(t, new(ApplySuite))
}

func (s *ApplySuite) TestApplyReturnsNewDraft() {
	before := EmptyContactMessage()

	after, err := Apply(before, Change{Field: "name", Value: "Priya"})

	s.Require().NoError(err)
	s.Equal("Priya", after.Name)
	s.Empty(before.Name, "input draft must not change")
}

func (s *ApplySuite) TestApplyAgreement() {
	s.Run("parses booleans", func() {
		d, err := Apply(EmptyDonorRegistration(), Change{Field: "agreement", Value: "true"})
		s.Require().NoError(err)
		s.True(d.Agreement)

		d, err = Apply(d, Change{Field: "agreement", Value: "false"})
		s.Require().NoError(err)
		s.False(d.Agreement)
	})

	s.Run("rejects other values", func() {
		d, err := Apply(EmptyDonorRegistration(), Change{Field: "agreement", Value: "yes please"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.False(d.Agreement)
	})
}

func (s *ApplySuite) TestApplyUnknownField() {
	_, err := Apply(EmptyEmergencyRequest(), Change{Field: "patientName", Value: "x"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Contains(err.Error(), `"patientName"`)
}

func (s *ApplySuite) TestEveryFieldIsSettable() {
	donor := EmptyDonorRegistration()
	for _, f := range []string{"full_name", "age", "gender", "blood_group", "district",
		"mobile_number", "alternate_number", "last_donated", "medical_conditions"} {
		var err error
		donor, err = Apply(donor, Change{Field: f, Value: "v"})
		s.Require().NoError(err, f)
	}
	s.Equal("v", donor.MedicalConditions)

	emergency := EmptyEmergencyRequest()
	for _, f := range []string{"patient_name", "hospital_name", "hospital_location", "district",
		"blood_group", "units_needed", "contact_number", "urgency", "additional_info"} {
		var err error
		emergency, err = Apply(emergency, Change{Field: f, Value: "v"})
		s.Require().NoError(err, f)
	}
	s.Equal("v", emergency.Urgency)
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, "High", Empty[EmergencyRequestDraft]().Urgency)
	assert.Equal(t, DonorRegistration{}, Empty[DonorRegistration]())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("newsletter")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestSubmitDonorRegistration(t *testing.T) {
	t.Run("complete draft is acknowledged and reset", func(t *testing.T) {
		out := Submit(completeDonor(), now, "ref-1")

		require.True(t, out.Accepted())
		assert.Nil(t, out.Rejection)
		assert.Equal(t, "ref-1", out.Acknowledgment.Reference)
		assert.Equal(t, "Registration Successful!", out.Acknowledgment.Title)
		assert.Equal(t, "Welcome to Tamil Nadu Blood Foundation. Your registration is being processed.", out.Acknowledgment.Description)
		assert.Equal(t, EmptyDonorRegistration(), out.Acknowledgment.Draft)
	})

	t.Run("missing agreement alone", func(t *testing.T) {
		d := completeDonor()
		d.Agreement = false

		out := Submit(d, now, "ref-2")

		require.False(t, out.Accepted())
		assert.Equal(t, "Agreement Required", out.Rejection.Title)
		assert.Equal(t, "Please agree to the terms and conditions to proceed.", out.Rejection.Description)
		assert.Equal(t, []string{"agreement"}, fields(out.Rejection.Errors))
	})

	t.Run("empty draft lists every required field", func(t *testing.T) {
		out := Submit(EmptyDonorRegistration(), now, "ref-3")

		require.False(t, out.Accepted())
		assert.Equal(t, "Incomplete Form", out.Rejection.Title)
		assert.Equal(t, []string{"full_name", "age", "gender", "blood_group", "district", "mobile_number", "agreement"},
			fields(out.Rejection.Errors))
	})

	tests := []struct {
		name  string
		edit  func(*DonorRegistration)
		field string
	}{
		{"too young", func(d *DonorRegistration) { d.Age = "17" }, "age"},
		{"too old", func(d *DonorRegistration) { d.Age = "66" }, "age"},
		{"age not a number", func(d *DonorRegistration) { d.Age = "twenty" }, "age"},
		{"unknown gender", func(d *DonorRegistration) { d.Gender = "M" }, "gender"},
		{"unknown blood group", func(d *DonorRegistration) { d.BloodGroup = "O" }, "blood_group"},
		{"unknown district", func(d *DonorRegistration) { d.District = "Bangalore" }, "district"},
		{"short mobile", func(d *DonorRegistration) { d.MobileNumber = "98765" }, "mobile_number"},
		{"short alternate", func(d *DonorRegistration) { d.AlternateNumber = "12" }, "alternate_number"},
		{"malformed last donated", func(d *DonorRegistration) { d.LastDonated = "15/12/2023" }, "last_donated"},
		{"future last donated", func(d *DonorRegistration) { d.LastDonated = "2024-02-01" }, "last_donated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDonor()
			tt.edit(&d)

			out := Submit(d, now, "ref")

			require.False(t, out.Accepted())
			assert.Equal(t, []string{tt.field}, fields(out.Rejection.Errors))
		})
	}

	t.Run("age bounds are inclusive", func(t *testing.T) {
		for _, age := range []string{"18", "65"} {
			d := completeDonor()
			d.Age = age
			assert.True(t, Submit(d, now, "ref").Accepted(), age)
		}
	})
}

func TestSubmitEmergencyRequest(t *testing.T) {
	t.Run("accepted and reset to high urgency", func(t *testing.T) {
		d := completeEmergency()
		d.Urgency = "Low"

		out := Submit(d, now, "ref")

		require.True(t, out.Accepted())
		assert.Equal(t, "Emergency Request Posted!", out.Acknowledgment.Title)
		assert.Equal(t, "Your blood requirement has been posted. Donors will be contacted immediately.", out.Acknowledgment.Description)
		assert.Equal(t, "High", out.Acknowledgment.Draft.Urgency)
		assert.Empty(t, out.Acknowledgment.Draft.PatientName)
	})

	t.Run("units must be at least one", func(t *testing.T) {
		d := completeEmergency()
		d.UnitsNeeded = "0"

		out := Submit(d, now, "ref")

		require.False(t, out.Accepted())
		require.Len(t, out.Rejection.Errors, 1)
		assert.Equal(t, "units_needed must be at least 1", out.Rejection.Errors[0].Message)
	})

	t.Run("urgency must be a tier", func(t *testing.T) {
		d := completeEmergency()
		d.Urgency = "Critical"

		out := Submit(d, now, "ref")

		assert.Equal(t, []string{"urgency"}, fields(out.Rejection.Errors))
	})
}

func TestSubmitContactMessage(t *testing.T) {
	d := ContactMessage{Name: "Priya", Email: "priya@example.org", Subject: "Camp", Message: "When is the next camp?"}

	out := Submit(d, now, "ref")
	require.True(t, out.Accepted())
	assert.Equal(t, "Message Sent", out.Acknowledgment.Title)
	assert.Equal(t, "Thank you for contacting us. We'll get back to you soon.", out.Acknowledgment.Description)
	assert.Equal(t, EmptyContactMessage(), out.Acknowledgment.Draft)

	d.Email = "priya-at-example"
	out = Submit(d, now, "ref")
	require.False(t, out.Accepted())
	assert.Equal(t, []string{"email"}, fields(out.Rejection.Errors))
}
