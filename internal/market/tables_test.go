package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillForDomain_KnownTokens(t *testing.T) {
	assert.Equal(t, "Machine Learning", SkillForDomain(DomainAIML))
	assert.Equal(t, "Data Science", SkillForDomain(DomainDataScience))
	assert.Equal(t, "Mobile Development", SkillForDomain(DomainMobileDev))
	assert.Equal(t, "DevOps", SkillForDomain(DomainDevOps))
}

func TestSkillForDomain_IdentityFallback(t *testing.T) {
	assert.Equal(t, "underwater_welding", SkillForDomain("underwater_welding"))
}

func TestSkillsForDomains_PreservesOrder(t *testing.T) {
	skills := SkillsForDomains([]string{DomainBlockchain, DomainWebDev, "mystery"})
	assert.Equal(t, []string{"Blockchain", "Web Development", "mystery"}, skills)
}

func TestProfileFor_KnownLocation(t *testing.T) {
	profile := ProfileFor("United States")
	assert.NotEmpty(t, profile.Trends)
	assert.Contains(t, profile.SalaryRanges, "Machine Learning")
	assert.NotEmpty(t, profile.RecommendedSkills)
}

func TestProfileFor_UnknownLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, ProfileFor(DefaultLocation), ProfileFor("Atlantis"))
}

func TestSalaryRange_UnknownSkill(t *testing.T) {
	assert.Equal(t, "Varies by employer", SalaryRange("India", "Falconry"))
	assert.NotEqual(t, "Varies by employer", SalaryRange("India", "Data Science"))
}
