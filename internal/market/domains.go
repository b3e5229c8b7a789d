// Package market holds the static lookup tables consulted by the resolver
// and the analytics builder: domain-to-skill display names and per-location
// job-market profiles. All tables are read-only process-wide constants.
package market

// Domain tokens accepted on the questionnaire.
const (
	DomainAIML          = "ai_ml"
	DomainDataScience   = "data_science"
	DomainWebDev        = "web_dev"
	DomainMobileDev     = "mobile_dev"
	DomainCloud         = "cloud"
	DomainCybersecurity = "cybersecurity"
	DomainDevOps        = "devops"
	DomainBlockchain    = "blockchain"
)

// DefaultSkill is the recommendation used when no questionnaire exists or no
// domain was selected.
const DefaultSkill = "Data Science"

// domainSkills maps a domain token to its canonical skill display name.
var domainSkills = map[string]string{
	DomainAIML:          "Machine Learning",
	DomainDataScience:   "Data Science",
	DomainWebDev:        "Web Development",
	DomainMobileDev:     "Mobile Development",
	DomainCloud:         "Cloud Computing",
	DomainCybersecurity: "Cybersecurity",
	DomainDevOps:        "DevOps",
	DomainBlockchain:    "Blockchain",
}

// SkillForDomain maps a domain token to its skill display name. Unmapped
// tokens pass through unchanged.
func SkillForDomain(domain string) string {
	if skill, ok := domainSkills[domain]; ok {
		return skill
	}
	return domain
}

// SkillsForDomains maps every domain token in order, preserving order.
func SkillsForDomains(domains []string) []string {
	skills := make([]string, 0, len(domains))
	for _, d := range domains {
		skills = append(skills, SkillForDomain(d))
	}
	return skills
}
