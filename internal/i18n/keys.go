package i18n

// Key identifies a translatable string. The value doubles as the fallback
// text shown when a locale has no entry for it.
type Key string

const (
	KeySiteTitle        Key = "site.title"
	KeySiteSubtitle     Key = "site.subtitle"
	KeyEmergencyHotline Key = "emergency.hotline"

	KeyNavHome       Key = "nav.home"
	KeyNavAbout      Key = "nav.about"
	KeyNavContact    Key = "nav.contact"
	KeyNavFacilities Key = "nav.facilities"
	KeyNavJoin       Key = "nav.join"
	KeyNavEmergency  Key = "nav.emergency"

	KeyHeroTitle      Key = "hero.title"
	KeyHeroSubtitle   Key = "hero.subtitle"
	KeyStatsDonors    Key = "stats.donors"
	KeyStatsDistricts Key = "stats.districts"
	KeyStatsService   Key = "stats.service"
	KeyCTADonate      Key = "cta.donate"
	KeyCTAEmergency   Key = "cta.emergency"

	KeyEmergencyUrgent  Key = "emergency.urgent"
	KeyEmergencyNeeded  Key = "emergency.needed"
	KeyEmergencyContact Key = "emergency.contact"

	KeySearchTitle               Key = "search.title"
	KeySearchSubtitle            Key = "search.subtitle"
	KeySearchDistrict            Key = "search.district"
	KeySearchDistrictPlaceholder Key = "search.district.placeholder"
	KeySearchBloodGroup          Key = "search.bloodgroup"
	KeySearchBloodGroupAll       Key = "search.bloodgroup.all"
	KeySearchButton              Key = "search.button"

	KeyDistrictsTitle    Key = "districts.title"
	KeyDistrictsSubtitle Key = "districts.subtitle"
	KeyDistrictsFind     Key = "districts.find"
	KeyDistrictsNone     Key = "districts.none"
)

var keys = []Key{
	KeySiteTitle, KeySiteSubtitle, KeyEmergencyHotline,
	KeyNavHome, KeyNavAbout, KeyNavContact, KeyNavFacilities, KeyNavJoin, KeyNavEmergency,
	KeyHeroTitle, KeyHeroSubtitle, KeyStatsDonors, KeyStatsDistricts, KeyStatsService,
	KeyCTADonate, KeyCTAEmergency,
	KeyEmergencyUrgent, KeyEmergencyNeeded, KeyEmergencyContact,
	KeySearchTitle, KeySearchSubtitle, KeySearchDistrict, KeySearchDistrictPlaceholder,
	KeySearchBloodGroup, KeySearchBloodGroupAll, KeySearchButton,
	KeyDistrictsTitle, KeyDistrictsSubtitle, KeyDistrictsFind, KeyDistrictsNone,
}

var knownKeys = func() map[Key]bool {
	m := make(map[Key]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}()

// Keys returns every key in declaration order.
func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}

// IsKnown reports whether k is one of the declared keys.
func (k Key) IsKnown() bool {
	return knownKeys[k]
}
