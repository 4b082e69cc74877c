package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/strumind/console/internal/client/models"
	"github.com/strumind/console/internal/client/services"
	"github.com/strumind/console/internal/common"
)

// Dashboard prints a short account summary: project count and the tracked
// analysis job, if any.
func (a *App) Dashboard(ctx context.Context) error {
	projects, err := a.projects.List(ctx)
	if err != nil {
		printlnFn("Could not load projects:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Projects: %d", len(projects)))
	for _, p := range projects {
		printlnFn(fmt.Sprintf("  %-36s %-24s %s", p.ID, p.Name, p.ProjectType))
	}

	if id, ok := a.analysis.TrackedJob(); ok {
		st := a.analysis.LastStatus()
		style := st.Style()
		printlnFn(fmt.Sprintf("Tracked job: %s%s %s %s\033[0m", style.Color, style.Icon, id, st))
	}
	return nil
}

// Projects lists the user's projects, optionally narrowed by a
// case-insensitive substring filter over name and description.
func (a *App) Projects(ctx context.Context, filter string) error {
	projects, err := a.projects.List(ctx)
	if err != nil {
		printlnFn("Could not load projects:", err.Error())
		return err
	}

	projects = services.Filter(projects, filter)
	if len(projects) == 0 {
		printlnFn("No projects found")
		return nil
	}
	for _, p := range projects {
		printlnFn(fmt.Sprintf("  %-36s %-24s %-10s %s", p.ID, p.Name, p.ProjectType, p.Description))
	}
	return nil
}

// CreateProject collects project fields and submits them. On failure the
// error is surfaced and nothing is cached.
func (a *App) CreateProject(ctx context.Context) error {
	draft := models.NewProjectDraft()

	name, err := GetSimpleText(a.reader, "Enter project name", os.Stdout)
	if err != nil {
		return err
	}
	draft.Name = name

	if draft.Description, err = GetSimpleText(a.reader, "Enter description", os.Stdout); err != nil {
		return err
	}
	if draft.ProjectType, err = GetText(a.reader, "Project type (building/bridge/industrial)", draft.ProjectType, os.Stdout); err != nil {
		return err
	}
	if draft.Units, err = GetText(a.reader, "Units (metric/imperial)", draft.Units, os.Stdout); err != nil {
		return err
	}
	if draft.DesignCode, err = GetText(a.reader, "Design code", draft.DesignCode, os.Stdout); err != nil {
		return err
	}

	project, err := a.projects.Create(ctx, draft)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Created project %s (%s)", project.Name, project.ID))
	return nil
}

// OpenProject enters a project workspace: a nested command loop scoped to
// one project. An unknown id shows a not-found message instead of an error
// state.
func (a *App) OpenProject(ctx context.Context, id string) error {
	project, err := a.projects.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Project not found:", id)
			return nil
		}
		printlnFn("Could not open project:", err.Error())
		return err
	}

	a.runProjectScope(ctx, project)
	return nil
}

func (a *App) runProjectScope(ctx context.Context, project *models.Project) {
	printlnFn(fmt.Sprintf("Opened project %q (type 'help' for commands, 'back' to leave)", project.Name))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		printlnFn(fmt.Sprintf("strumind/%s> ", project.Name))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: info, (m)odels, newmodel, open <model-id>, edit, delete, back")

		case "info":
			printlnFn(fmt.Sprintf("%s  %s", project.ID, project.Name))
			printlnFn(fmt.Sprintf("Type: %s  Units: %s  Code: %s", project.ProjectType, project.Units, project.DesignCode))
			if project.Description != "" {
				printlnFn(project.Description)
			}

		case "m", "models":
			a.listModels(ctx, project.ID)

		case "newmodel":
			a.createModel(ctx, project.ID)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <model-id>")
				continue
			}
			a.openModel(ctx, project, args[0])

		case "edit":
			a.editProject(ctx, project)

		case "delete":
			if a.deleteProject(ctx, project) {
				return
			}

		case "back", "exit", "quit":
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) listModels(ctx context.Context, projectID string) {
	list, err := a.projects.Models(ctx, projectID)
	if err != nil {
		printlnFn("Could not load models:", err.Error())
		return
	}
	if len(list) == 0 {
		printlnFn("No models yet; use 'newmodel' to create one")
		return
	}
	for _, m := range list {
		printlnFn(fmt.Sprintf("  %-36s %-24s %-10s %s", m.ID, m.Name, m.ModelType, m.AnalysisType))
	}
}

func (a *App) createModel(ctx context.Context, projectID string) {
	draft := models.NewModelDraft()

	name, err := GetSimpleText(a.reader, "Enter model name", os.Stdout)
	if err != nil {
		return
	}
	draft.Name = name

	if draft.Description, err = GetSimpleText(a.reader, "Enter description", os.Stdout); err != nil {
		return
	}
	if draft.ModelType, err = GetText(a.reader, "Model type (3d_frame/2d_frame/truss)", draft.ModelType, os.Stdout); err != nil {
		return
	}
	if draft.AnalysisType, err = GetText(a.reader, "Analysis type", draft.AnalysisType, os.Stdout); err != nil {
		return
	}

	model, err := a.projects.CreateModel(ctx, projectID, draft)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Created model %s (%s)", model.Name, model.ID))
}

func (a *App) openModel(ctx context.Context, project *models.Project, modelID string) {
	list, err := a.projects.Models(ctx, project.ID)
	if err != nil {
		printlnFn("Could not load models:", err.Error())
		return
	}
	for _, m := range list {
		if m.ID == modelID {
			a.runModelScope(ctx, project, &m)
			return
		}
	}
	printlnFn("Model not found:", modelID)
}

func (a *App) editProject(ctx context.Context, project *models.Project) {
	draft := models.ProjectDraft{
		Name:        project.Name,
		Description: project.Description,
		ProjectType: project.ProjectType,
		Units:       project.Units,
		DesignCode:  project.DesignCode,
	}

	var err error
	if draft.Name, err = GetText(a.reader, "Project name", draft.Name, os.Stdout); err != nil {
		return
	}
	if draft.Description, err = GetText(a.reader, "Description", draft.Description, os.Stdout); err != nil {
		return
	}

	updated, err := a.projects.Update(ctx, project.ID, draft)
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return
	}
	*project = *updated
	printlnFn("Project updated")
}

// deleteProject returns true when the project was removed and the scope
// should close.
func (a *App) deleteProject(ctx context.Context, project *models.Project) bool {
	ok, err := GetBool(a.reader, fmt.Sprintf("Delete project %q?", project.Name), false, os.Stdout)
	if err != nil || !ok {
		return false
	}
	if err := a.projects.Delete(ctx, project.ID); err != nil {
		printlnFn("Delete failed:", err.Error())
		return false
	}
	printlnFn("Project deleted")
	return true
}
