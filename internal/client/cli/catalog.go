package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/strumind/console/internal/client/models"
)

func (a *App) listMaterials(ctx context.Context, modelID string) {
	list, err := a.catalog.Materials(ctx, modelID)
	if err != nil {
		printlnFn("Could not load materials:", err.Error())
		return
	}
	if len(list) == 0 {
		printlnFn("No materials yet; use 'addmaterial'")
		return
	}
	for _, m := range list {
		printlnFn(fmt.Sprintf("  %-36s %-16s %-10s E=%.4g fy=%.4g", m.ID, m.Name, m.MaterialType, m.ElasticModulus, m.YieldStrength))
	}
}

func (a *App) addMaterial(ctx context.Context, modelID string) {
	var draft models.MaterialDraft
	var err error

	if draft.Name, err = GetSimpleText(a.reader, "Material name", os.Stdout); err != nil {
		return
	}
	if draft.MaterialType, err = GetText(a.reader, "Material type (steel/concrete/timber)", "steel", os.Stdout); err != nil {
		return
	}
	if draft.ElasticModulus, err = GetNumber(a.reader, "Elastic modulus (MPa)", 200000, 1, 1e7, os.Stdout); err != nil {
		return
	}
	if draft.PoissonRatio, err = GetNumber(a.reader, "Poisson ratio", 0.3, 0, 0.5, os.Stdout); err != nil {
		return
	}
	if draft.Density, err = GetNumber(a.reader, "Density (kg/m3)", 7850, 1, 30000, os.Stdout); err != nil {
		return
	}
	if draft.YieldStrength, err = GetNumber(a.reader, "Yield strength (MPa)", 350, 1, 10000, os.Stdout); err != nil {
		return
	}

	m, err := a.catalog.CreateMaterial(ctx, modelID, draft)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Created material %s (%s)", m.Name, m.ID))
}

func (a *App) editMaterial(ctx context.Context, modelID, id string) {
	list, err := a.catalog.Materials(ctx, modelID)
	if err != nil {
		printlnFn("Could not load materials:", err.Error())
		return
	}
	var cur *models.Material
	for i := range list {
		if list[i].ID == id {
			cur = &list[i]
			break
		}
	}
	if cur == nil {
		printlnFn("Material not found:", id)
		return
	}

	var draft models.MaterialDraft
	if draft.Name, err = GetText(a.reader, "Material name", cur.Name, os.Stdout); err != nil {
		return
	}
	if draft.MaterialType, err = GetText(a.reader, "Material type (steel/concrete/timber)", cur.MaterialType, os.Stdout); err != nil {
		return
	}
	if draft.ElasticModulus, err = GetNumber(a.reader, "Elastic modulus (MPa)", cur.ElasticModulus, 1, 1e7, os.Stdout); err != nil {
		return
	}
	if draft.PoissonRatio, err = GetNumber(a.reader, "Poisson ratio", cur.PoissonRatio, 0, 0.5, os.Stdout); err != nil {
		return
	}
	if draft.Density, err = GetNumber(a.reader, "Density (kg/m3)", cur.Density, 1, 30000, os.Stdout); err != nil {
		return
	}
	if draft.YieldStrength, err = GetNumber(a.reader, "Yield strength (MPa)", cur.YieldStrength, 1, 10000, os.Stdout); err != nil {
		return
	}

	m, err := a.catalog.UpdateMaterial(ctx, modelID, id, draft)
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Updated material %s (%s)", m.Name, m.ID))
}

func (a *App) deleteMaterial(ctx context.Context, modelID, id string) {
	if err := a.catalog.DeleteMaterial(ctx, modelID, id); err != nil {
		printlnFn("Delete failed:", err.Error())
		return
	}
	printlnFn("Material deleted")
}

func (a *App) listSections(ctx context.Context, modelID string) {
	list, err := a.catalog.Sections(ctx, modelID)
	if err != nil {
		printlnFn("Could not load sections:", err.Error())
		return
	}
	if len(list) == 0 {
		printlnFn("No sections yet; use 'addsection'")
		return
	}
	for _, s := range list {
		printlnFn(fmt.Sprintf("  %-36s %-16s %-10s A=%.4g Iy=%.4g", s.ID, s.Name, s.SectionType, s.Area, s.MomentInertiaY))
	}
}

func (a *App) addSection(ctx context.Context, modelID string) {
	var draft models.SectionDraft
	var err error

	if draft.Name, err = GetSimpleText(a.reader, "Section name", os.Stdout); err != nil {
		return
	}
	if draft.SectionType, err = GetText(a.reader, "Section type (i_section/channel/hollow/custom)", "i_section", os.Stdout); err != nil {
		return
	}
	if draft.Area, err = GetNumber(a.reader, "Area (mm2)", 5000, 1, 1e6, os.Stdout); err != nil {
		return
	}
	if draft.MomentInertiaY, err = GetNumber(a.reader, "Moment of inertia Iy (mm4)", 1e7, 1, 1e12, os.Stdout); err != nil {
		return
	}
	if draft.MomentInertiaZ, err = GetNumber(a.reader, "Moment of inertia Iz (mm4)", 1e6, 1, 1e12, os.Stdout); err != nil {
		return
	}

	s, err := a.catalog.CreateSection(ctx, modelID, draft)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Created section %s (%s)", s.Name, s.ID))
}

func (a *App) editSection(ctx context.Context, modelID, id string) {
	list, err := a.catalog.Sections(ctx, modelID)
	if err != nil {
		printlnFn("Could not load sections:", err.Error())
		return
	}
	var cur *models.Section
	for i := range list {
		if list[i].ID == id {
			cur = &list[i]
			break
		}
	}
	if cur == nil {
		printlnFn("Section not found:", id)
		return
	}

	var draft models.SectionDraft
	if draft.Name, err = GetText(a.reader, "Section name", cur.Name, os.Stdout); err != nil {
		return
	}
	if draft.SectionType, err = GetText(a.reader, "Section type (i_section/channel/hollow/custom)", cur.SectionType, os.Stdout); err != nil {
		return
	}
	if draft.Area, err = GetNumber(a.reader, "Area (mm2)", cur.Area, 1, 1e6, os.Stdout); err != nil {
		return
	}
	if draft.MomentInertiaY, err = GetNumber(a.reader, "Moment of inertia Iy (mm4)", cur.MomentInertiaY, 1, 1e12, os.Stdout); err != nil {
		return
	}
	if draft.MomentInertiaZ, err = GetNumber(a.reader, "Moment of inertia Iz (mm4)", cur.MomentInertiaZ, 1, 1e12, os.Stdout); err != nil {
		return
	}

	s, err := a.catalog.UpdateSection(ctx, modelID, id, draft)
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return
	}
	printlnFn(fmt.Sprintf("Updated section %s (%s)", s.Name, s.ID))
}

func (a *App) deleteSection(ctx context.Context, modelID, id string) {
	if err := a.catalog.DeleteSection(ctx, modelID, id); err != nil {
		printlnFn("Delete failed:", err.Error())
		return
	}
	printlnFn("Section deleted")
}
