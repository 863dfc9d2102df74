package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"FitBuddyGo/models"
	"FitBuddyGo/services"
)

var assistantStyle = color.New(color.FgCyan)

func newChatCommand(deps *Deps) *cobra.Command {
	var oneShot string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the AI fitness assistant",
		Long: "Interactive chat with the AI fitness assistant. " +
			"Type a message and press enter; use /plan, /nutrition, /exercise for quick prompts, " +
			"/refresh to reload your profile, and /quit to leave.",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := deps.requireUser()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			settings := deps.Store.Settings()

			// 会话开始时拉取一次资料快照，用于个性化系统提示词
			profile, err := deps.Profile.Load(ctx, user)
			if err != nil {
				return err
			}

			session := services.NewChatSession(
				deps.Gemini,
				services.BuildSystemPrompt(profile, settings),
				settings.Language,
			)
			session.SeedGreeting()
			defer session.Wait()

			out := cmd.OutOrStdout()
			session.OnChunk = func(chunk string) {
				fmt.Fprint(out, assistantStyle.Sprint(chunk))
			}

			send := func(text string) error {
				if strings.TrimSpace(text) == "" {
					return nil
				}
				fmt.Fprint(out, "\n")
				if err := session.Send(ctx, text); err != nil {
					return err
				}
				fmt.Fprint(out, "\n")
				return nil
			}

			if oneShot != "" {
				return send(oneShot)
			}

			turns := session.Turns()
			if len(turns) > 0 {
				fmt.Fprintln(out, assistantStyle.Sprint(turns[0].Text))
			}

			placeholder := localized(settings.Language,
				"Type your question or thoughts… (/quit to exit)",
				"输入你的问题…（/quit 退出）")
			fmt.Fprintln(out, placeholder)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprint(out, "> ")
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				text := line
				switch line {
				case "/quit", "/exit":
					return nil
				case "/refresh":
					// 资料或设置在别的终端改过后，重新计算系统提示词
					refreshed, err := deps.Profile.Load(ctx, user)
					if err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
						fmt.Fprint(out, "> ")
						continue
					}
					profile = refreshed
					settings = deps.Store.Settings()
					session.UpdateSystemPrompt(services.BuildSystemPrompt(profile, settings))
					fmt.Fprintln(out, localized(settings.Language,
						"Profile refreshed.", "资料已刷新。"))
					fmt.Fprint(out, "> ")
					continue
				case "/plan":
					text = quickPrompt("plan", profile, settings)
				case "/nutrition":
					text = quickPrompt("nutrition", profile, settings)
				case "/exercise":
					text = quickPrompt("exercise", profile, settings)
				}
				if err := send(text); err != nil {
					// 失败不中断会话，提示后可继续输入
					fmt.Fprintf(cmd.ErrOrStderr(), "\n%v\n", err)
				}
				fmt.Fprint(out, "> ")
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&oneShot, "message", "m", "", "send a single message and exit")
	return cmd
}

// quickPrompt 快捷提问模板，与界面语言和单位偏好一致
func quickPrompt(kind string, profile models.PersonalizationProfile, settings models.Settings) string {
	zh := settings.Language == models.LanguageZH
	goal := string(profile.PrimaryGoal)
	if goal == "" {
		goal = string(models.GoalMaintainHealth)
	}

	switch kind {
	case "plan":
		if zh {
			unitName := "公制"
			if settings.Unit == models.UnitImperial {
				unitName = "英制"
			}
			return fmt.Sprintf("请根据我的目标（%s），时间安排（每周 3~4 次），以及单位使用%s，生成 7 天训练计划。", goal, unitName)
		}
		return fmt.Sprintf("Create a 7-day workout plan tailored to my goal (%s), schedule (3-4x per week), using %s units.", goal, settings.Unit)
	case "nutrition":
		if zh {
			return "请给出简明的营养建议（蛋白质、碳水、健康脂肪、补水与恢复），并提供一天示例菜单。"
		}
		return "Give concise nutrition tips (protein, carbs, healthy fats, hydration & recovery) and a 1-day sample menu."
	case "exercise":
		if zh {
			return "请列出 5 个适合初学者的力量训练动作，包含每个动作的组数、次数和注意事项。"
		}
		return "List 5 beginner strength exercises with sets, reps, and key cues."
	default:
		return ""
	}
}
