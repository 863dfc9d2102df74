package services

import (
	"fmt"
	"strings"

	"FitBuddyGo/models"
)

// BuildSystemPrompt 根据用户资料与偏好设置生成系统提示词。
// 纯函数：资料或设置变化后需要重新生成，不做缓存，缺失的可选字段直接省略。
func BuildSystemPrompt(profile models.PersonalizationProfile, settings models.Settings) string {
	name := profile.Username
	if name == "" {
		name = "User"
	}

	goal := profile.PrimaryGoal
	if goal == "" {
		goal = models.GoalMaintainHealth
	}

	lang := "English"
	if settings.Language == models.LanguageZH {
		lang = "Chinese"
	}

	unit := "metric"
	unitSuffix := "kg"
	if settings.Unit == models.UnitImperial {
		unit = "imperial"
		unitSuffix = "lb"
	}

	age := ""
	if profile.Age != nil {
		age = fmt.Sprintf("Age: %d", *profile.Age)
	}
	gender := ""
	if profile.Gender != "" {
		gender = fmt.Sprintf("Gender: %s", profile.Gender)
	}
	tw := ""
	if profile.TargetWeight != nil {
		tw = fmt.Sprintf("TargetWeight: %g %s", *profile.TargetWeight, unitSuffix)
	}

	lines := []string{
		fmt.Sprintf("You are an AI Fitness Assistant for %s.", name),
		fmt.Sprintf("Respond in %s.", lang),
		fmt.Sprintf("Prefer %s units in outputs.", unit),
		strings.TrimSpace(fmt.Sprintf("User profile: PrimaryGoal=%s. %s %s %s", goal, age, gender, tw)),
		"Guidelines: Keep answers concise and structured. Offer clear steps, optional alternatives, and simple cautions. You are not a medical professional.",
	}
	return strings.Join(lines, "\n")
}
