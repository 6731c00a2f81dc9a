package draft

import (
	"strconv"
	"time"

	"bloodnet/pkg/domain"
	dErrors "bloodnet/pkg/domain-errors"
)

const fieldAgreement = "agreement"

// Donor eligibility bounds shown on the registration page.
const (
	MinDonorAge = 18
	MaxDonorAge = 65
)

// DonorRegistration is the "join as donor" form.
type DonorRegistration struct {
	FullName          string `json:"full_name"`
	Age               string `json:"age"`
	Gender            string `json:"gender"`
	BloodGroup        string `json:"blood_group"`
	District          string `json:"district"`
	MobileNumber      string `json:"mobile_number"`
	AlternateNumber   string `json:"alternate_number"`
	LastDonated       string `json:"last_donated"`
	MedicalConditions string `json:"medical_conditions"`
	Agreement         bool   `json:"agreement"`
}

func EmptyDonorRegistration() DonorRegistration { return DonorRegistration{} }

func (DonorRegistration) Kind() Kind { return KindDonorRegistration }

func (DonorRegistration) Reset() DonorRegistration { return EmptyDonorRegistration() }

func (d DonorRegistration) With(c Change) (DonorRegistration, error) {
	switch c.Field {
	case "full_name":
		d.FullName = c.Value
	case "age":
		d.Age = c.Value
	case "gender":
		d.Gender = c.Value
	case "blood_group":
		d.BloodGroup = c.Value
	case "district":
		d.District = c.Value
	case "mobile_number":
		d.MobileNumber = c.Value
	case "alternate_number":
		d.AlternateNumber = c.Value
	case "last_donated":
		d.LastDonated = c.Value
	case "medical_conditions":
		d.MedicalConditions = c.Value
	case fieldAgreement:
		agreed, err := strconv.ParseBool(c.Value)
		if err != nil {
			return d, dErrors.New(dErrors.CodeValidation, "agreement must be true or false")
		}
		d.Agreement = agreed
	default:
		return d, unknownField(KindDonorRegistration, c.Field)
	}
	return d, nil
}

func (d DonorRegistration) Validate(now time.Time) []FieldError {
	var c checker
	c.required("full_name", d.FullName)
	c.intRange("age", d.Age, MinDonorAge, MaxDonorAge)
	c.oneOf("gender", d.Gender, "Male", "Female", "Other")
	c.bloodGroup("blood_group", d.BloodGroup)
	c.district("district", d.District)
	c.phone("mobile_number", d.MobileNumber, false)
	c.phone("alternate_number", d.AlternateNumber, true)
	c.pastDate("last_donated", d.LastDonated, now)
	if !d.Agreement {
		c.fail(fieldAgreement, "agreement to the terms and conditions is required")
	}
	return c.errs
}

// EmergencyRequestDraft is the "post emergency request" form.
type EmergencyRequestDraft struct {
	PatientName      string `json:"patient_name"`
	HospitalName     string `json:"hospital_name"`
	HospitalLocation string `json:"hospital_location"`
	District         string `json:"district"`
	BloodGroup       string `json:"blood_group"`
	UnitsNeeded      string `json:"units_needed"`
	ContactNumber    string `json:"contact_number"`
	Urgency          string `json:"urgency"`
	AdditionalInfo   string `json:"additional_info"`
}

// EmptyEmergencyRequest returns a blank request preset to High urgency.
func EmptyEmergencyRequest() EmergencyRequestDraft {
	return EmergencyRequestDraft{Urgency: string(domain.UrgencyHigh)}
}

func (EmergencyRequestDraft) Kind() Kind { return KindEmergencyRequest }

func (EmergencyRequestDraft) Reset() EmergencyRequestDraft { return EmptyEmergencyRequest() }

func (d EmergencyRequestDraft) With(c Change) (EmergencyRequestDraft, error) {
	switch c.Field {
	case "patient_name":
		d.PatientName = c.Value
	case "hospital_name":
		d.HospitalName = c.Value
	case "hospital_location":
		d.HospitalLocation = c.Value
	case "district":
		d.District = c.Value
	case "blood_group":
		d.BloodGroup = c.Value
	case "units_needed":
		d.UnitsNeeded = c.Value
	case "contact_number":
		d.ContactNumber = c.Value
	case "urgency":
		d.Urgency = c.Value
	case "additional_info":
		d.AdditionalInfo = c.Value
	default:
		return d, unknownField(KindEmergencyRequest, c.Field)
	}
	return d, nil
}

func (d EmergencyRequestDraft) Validate(_ time.Time) []FieldError {
	var c checker
	c.required("patient_name", d.PatientName)
	c.bloodGroup("blood_group", d.BloodGroup)
	c.intRange("units_needed", d.UnitsNeeded, 1, maxInt)
	c.oneOf("urgency", d.Urgency,
		string(domain.UrgencyHigh), string(domain.UrgencyMedium), string(domain.UrgencyLow))
	c.required("hospital_name", d.HospitalName)
	c.required("hospital_location", d.HospitalLocation)
	c.district("district", d.District)
	c.phone("contact_number", d.ContactNumber, false)
	return c.errs
}

// ContactMessage is the "contact us" form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func EmptyContactMessage() ContactMessage { return ContactMessage{} }

func (ContactMessage) Kind() Kind { return KindContactMessage }

func (ContactMessage) Reset() ContactMessage { return EmptyContactMessage() }

func (d ContactMessage) With(c Change) (ContactMessage, error) {
	switch c.Field {
	case "name":
		d.Name = c.Value
	case "email":
		d.Email = c.Value
	case "subject":
		d.Subject = c.Value
	case "message":
		d.Message = c.Value
	default:
		return d, unknownField(KindContactMessage, c.Field)
	}
	return d, nil
}

func (d ContactMessage) Validate(_ time.Time) []FieldError {
	var c checker
	c.required("name", d.Name)
	c.email("email", d.Email)
	c.required("subject", d.Subject)
	c.required("message", d.Message)
	return c.errs
}
