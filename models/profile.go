package models

// PrimaryGoal 健身目标
type PrimaryGoal string

const (
	GoalLoseWeight     PrimaryGoal = "LOSE_WEIGHT"
	GoalBuildMuscle    PrimaryGoal = "BUILD_MUSCLE"
	GoalImproveFitness PrimaryGoal = "IMPROVE_FITNESS"
	GoalMaintainHealth PrimaryGoal = "MAINTAIN_HEALTH"
)

func (g PrimaryGoal) IsValid() bool {
	switch g {
	case GoalLoseWeight, GoalBuildMuscle, GoalImproveFitness, GoalMaintainHealth:
		return true
	default:
		return false
	}
}

// PersonalizationProfile 用户个性化资料，可选字段缺失时为 nil
type PersonalizationProfile struct {
	Username     string      `json:"username"`
	Age          *int        `json:"age,omitempty"`
	Gender       string      `json:"gender,omitempty"`
	PrimaryGoal  PrimaryGoal `json:"primaryGoal,omitempty"`
	TargetWeight *float64    `json:"targetWeight,omitempty"`
}

// DefaultProfile 资料不存在（404）时使用的默认资料
func DefaultProfile(username string) PersonalizationProfile {
	return PersonalizationProfile{
		Username:    username,
		PrimaryGoal: GoalMaintainHealth,
	}
}
