package cli

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/cli/config"
	"github.com/maham-hq/maham/pkg/domain/interfaces"
	"github.com/maham-hq/maham/pkg/domain/model"
	"github.com/maham-hq/maham/pkg/domain/model/auth"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdSeed() *cli.Command {
	var (
		managerEmail    string
		managerPassword string
		managerName     string
		demo            bool

		repoCfg config.Repository
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "manager-email",
			Usage:       "Email for the initial manager account",
			Required:    true,
			Sources:     cli.EnvVars("MAHAM_MANAGER_EMAIL"),
			Destination: &managerEmail,
		},
		&cli.StringFlag{
			Name:        "manager-password",
			Usage:       "Password for the initial manager account",
			Required:    true,
			Sources:     cli.EnvVars("MAHAM_MANAGER_PASSWORD"),
			Destination: &managerPassword,
		},
		&cli.StringFlag{
			Name:        "manager-name",
			Usage:       "Display name for the initial manager account",
			Value:       "Manager",
			Sources:     cli.EnvVars("MAHAM_MANAGER_NAME"),
			Destination: &managerName,
		},
		&cli.BoolFlag{
			Name:        "demo",
			Usage:       "Also seed demo departments, employees, and tasks",
			Destination: &demo,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Seed the repository with an initial manager account",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			manager, err := seedManager(ctx, repo, managerName, managerEmail, managerPassword)
			if err != nil {
				return err
			}
			color.Green("✔ manager account %q created (%s)", manager.Name, manager.Email)

			if demo {
				if err := seedDemoData(ctx, repo, manager); err != nil {
					return err
				}
				color.Green("✔ demo data seeded")
			}

			return nil
		},
	}
}

func seedManager(ctx context.Context, repo interfaces.Repository, name, email, password string) (*model.Profile, error) {
	profile, err := repo.Profile().Create(ctx, &model.Profile{
		Name:  name,
		Email: email,
		Role:  types.RoleManager,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create manager profile", goerr.V("email", email))
	}

	cred, err := auth.NewCredential(profile.ID, email, password)
	if err != nil {
		return nil, err
	}
	if err := repo.PutCredential(ctx, cred); err != nil {
		return nil, goerr.Wrap(err, "failed to store manager credential")
	}

	return profile, nil
}

func seedDemoData(ctx context.Context, repo interfaces.Repository, manager *model.Profile) error {
	departments := []string{
		"الموارد البشرية",
		"التقنية",
		"المالية",
	}
	for _, name := range departments {
		if _, err := repo.Department().Create(ctx, &model.Department{Name: name}); err != nil {
			return goerr.Wrap(err, "failed to seed department", goerr.V("name", name))
		}
		color.Cyan("  department: %s", name)
	}

	employees := []*model.Employee{
		{Name: "أحمد محمد", Email: "ahmed@example.com", Department: "التقنية", JobTitle: "مطور برمجيات"},
		{Name: "فاطمة علي", Email: "fatima@example.com", Department: "الموارد البشرية", JobTitle: "أخصائية موارد بشرية"},
		{Name: "خالد السعيد", Email: "khaled@example.com", Department: "المالية", JobTitle: "محاسب"},
	}
	for _, e := range employees {
		if _, err := repo.Employee().Create(ctx, e); err != nil {
			return goerr.Wrap(err, "failed to seed employee", goerr.V("name", e.Name))
		}
		color.Cyan("  employee: %s (%s)", e.Name, e.Department)
	}

	now := time.Now().UTC()
	tasks := []*model.Task{
		{
			Title:       "مراجعة طلبات التوظيف",
			Description: "مراجعة طلبات التوظيف الجديدة لقسم التقنية",
			Deadline:    now.AddDate(0, 0, 7),
			AssignedTo:  "فاطمة علي",
			AssignedBy:  manager.Name,
			Priority:    types.TaskPriorityUrgent,
			Status:      types.TaskStatusPending,
			Department:  "الموارد البشرية",
		},
		{
			Title:       "تحديث نظام إدارة المهام",
			Description: "ترقية الخادم وتحديث الواجهات",
			Deadline:    now.AddDate(0, 1, 0),
			AssignedTo:  "أحمد محمد",
			AssignedBy:  manager.Name,
			Priority:    types.TaskPriorityNormal,
			Status:      types.TaskStatusPending,
			Department:  "التقنية",
		},
		{
			Title:       "إعداد التقرير المالي الشهري",
			Description: "تجهيز التقرير المالي لشهر أغسطس",
			Deadline:    now.AddDate(0, 0, 14),
			AssignedTo:  "خالد السعيد",
			AssignedBy:  manager.Name,
			Priority:    types.TaskPriorityNormal,
			Status:      types.TaskStatusPending,
			Department:  "المالية",
		},
	}
	for _, t := range tasks {
		if _, err := repo.Task().Create(ctx, t); err != nil {
			return goerr.Wrap(err, "failed to seed task", goerr.V("title", t.Title))
		}
		color.Cyan("  task: %s → %s", t.Title, t.AssignedTo)
	}

	return nil
}
