package market

// DefaultLocation is used when no location was stored or the requested
// location has no profile.
const DefaultLocation = "India"

// LocationProfile holds the market tables for one location.
type LocationProfile struct {
	Trends            []string
	SalaryRanges      map[string]string
	Opportunities     map[string]string
	RecommendedSkills []string
}

var locationProfiles = map[string]LocationProfile{
	"India": {
		Trends: []string{
			"IT services hiring is shifting toward product engineering roles",
			"AI/ML openings grew faster than any other category this year",
			"Tier-2 cities are emerging as remote-first hiring hubs",
		},
		SalaryRanges: map[string]string{
			"Data Science":       "Rs 8-25 LPA",
			"Machine Learning":   "Rs 10-30 LPA",
			"Web Development":    "Rs 5-18 LPA",
			"Mobile Development": "Rs 6-20 LPA",
			"Cloud Computing":    "Rs 9-28 LPA",
			"Cybersecurity":      "Rs 7-24 LPA",
			"DevOps":             "Rs 8-26 LPA",
			"Blockchain":         "Rs 9-30 LPA",
		},
		Opportunities: map[string]string{
			"Data Science":       "Strong demand across fintech, e-commerce and analytics consultancies",
			"Machine Learning":   "Product companies and GCCs are building in-house ML teams",
			"Web Development":    "Startup ecosystem keeps full-stack roles in steady supply",
			"Mobile Development": "Large consumer-app market sustains Android-first hiring",
			"Cloud Computing":    "Cloud migration projects drive demand in every major IT hub",
			"Cybersecurity":      "Banking and government compliance mandates are expanding security teams",
			"DevOps":             "Platform engineering roles growing in mid-size product companies",
			"Blockchain":         "Niche but well-paid roles in fintech and exchanges",
		},
		RecommendedSkills: []string{"Data Science", "Machine Learning", "Cloud Computing", "Web Development"},
	},
	"United States": {
		Trends: []string{
			"AI tooling roles outpace traditional software openings",
			"Remote hiring has stabilized at roughly a third of postings",
			"Healthcare and defense tech are the fastest-growing verticals",
		},
		SalaryRanges: map[string]string{
			"Data Science":       "$95k-$165k",
			"Machine Learning":   "$110k-$190k",
			"Web Development":    "$75k-$140k",
			"Mobile Development": "$85k-$150k",
			"Cloud Computing":    "$100k-$175k",
			"Cybersecurity":      "$90k-$160k",
			"DevOps":             "$95k-$165k",
			"Blockchain":         "$100k-$180k",
		},
		Opportunities: map[string]string{
			"Data Science":       "Analytics roles across nearly every industry vertical",
			"Machine Learning":   "Frontier-model and applied-ML teams hiring aggressively",
			"Web Development":    "Steady demand, strongest for React and TypeScript stacks",
			"Mobile Development": "iOS specialists command a premium in consumer tech",
			"Cloud Computing":    "Multi-cloud expertise sought by enterprises of every size",
			"Cybersecurity":      "Chronic talent shortage keeps security hiring strong",
			"DevOps":             "SRE and platform roles in every scaled engineering org",
			"Blockchain":         "Concentrated in fintech hubs and crypto-native firms",
		},
		RecommendedSkills: []string{"Machine Learning", "Cloud Computing", "Cybersecurity", "Data Science"},
	},
	"Europe": {
		Trends: []string{
			"Regulation-driven demand for privacy and security engineering",
			"Green tech and industrial IoT are expanding hiring",
			"English-first engineering teams widen the candidate pool",
		},
		SalaryRanges: map[string]string{
			"Data Science":       "EUR 50k-90k",
			"Machine Learning":   "EUR 55k-100k",
			"Web Development":    "EUR 40k-75k",
			"Mobile Development": "EUR 45k-80k",
			"Cloud Computing":    "EUR 55k-95k",
			"Cybersecurity":      "EUR 50k-90k",
			"DevOps":             "EUR 55k-95k",
			"Blockchain":         "EUR 55k-100k",
		},
		Opportunities: map[string]string{
			"Data Science":       "Strong in automotive, pharma and banking analytics",
			"Machine Learning":   "Research-adjacent industry labs across the region",
			"Web Development":    "Agency and product work in every major city",
			"Mobile Development": "Fintech and mobility apps sustain steady demand",
			"Cloud Computing":    "Sovereign-cloud initiatives create new platform roles",
			"Cybersecurity":      "NIS2 compliance is expanding security headcount",
			"DevOps":             "Platform teams standard in scale-ups and enterprises",
			"Blockchain":         "Hubs in Berlin, Zug and Lisbon",
		},
		RecommendedSkills: []string{"Cybersecurity", "Cloud Computing", "Data Science", "DevOps"},
	},
}

// ProfileFor returns the market profile for a location, falling back to the
// default location when the key is absent.
func ProfileFor(location string) LocationProfile {
	if p, ok := locationProfiles[location]; ok {
		return p
	}
	return locationProfiles[DefaultLocation]
}

// SalaryRange returns the salary-range string for a skill in a location, or
// a neutral placeholder when the skill has no entry.
func SalaryRange(location, skill string) string {
	p := ProfileFor(location)
	if s, ok := p.SalaryRanges[skill]; ok {
		return s
	}
	return "Varies by employer"
}
