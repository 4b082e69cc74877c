package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/strumind/console/internal/client/models"
)

// runModelScope is the per-model workspace: builder, analysis, design,
// detailing, bim and catalog screens scoped to one structural model.
// Leaving the scope cancels scopeCtx, which tears down any polling the
// scope started.
func (a *App) runModelScope(ctx context.Context, project *models.Project, model *models.StructuralModel) {
	scopeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn(fmt.Sprintf("Opened model %q (type 'help' for commands, 'back' to leave)", model.Name))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		printlnFn(fmt.Sprintf("strumind/%s/%s> ", project.Name, model.Name))
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
			printlnFn("Builder:   builder, select <element-id>, node <node-id>")
			printlnFn("Analysis:  run, status, watch, cancel, results, result <id>")
			printlnFn("Design:    check, designresults, optimize, detailing")
			printlnFn("BIM:       geometry, seed, export <ifc|step|dwg>")
			printlnFn("Catalogs:  materials, addmaterial, editmaterial <id>, delmaterial <id>")
			printlnFn("           sections, addsection, editsection <id>, delsection <id>")
			printlnFn("Other:     back")

		case "builder":
			a.showBuilder(scopeCtx, model.ID)

		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <element-id>")
				continue
			}
			a.selectElement(scopeCtx, model.ID, args[0])

		case "node":
			if len(args) == 0 {
				printlnFn("Usage: node <node-id>")
				continue
			}
			a.clickNode(args[0])

		case "run":
			a.runAnalysis(scopeCtx, model)

		case "status":
			a.jobStatus(scopeCtx)

		case "watch":
			a.watchJob(scopeCtx)

		case "cancel":
			a.cancelJob(scopeCtx)

		case "results":
			a.listResults(scopeCtx, model.ID)

		case "result":
			if len(args) == 0 {
				printlnFn("Usage: result <result-id>")
				continue
			}
			a.showResult(scopeCtx, args[0])

		case "check":
			a.designCheck(scopeCtx, model.ID)

		case "designresults":
			a.designResults(scopeCtx, model.ID)

		case "optimize":
			a.optimizeDesign(scopeCtx, model.ID)

		case "detailing":
			a.detailing(scopeCtx, model.ID)

		case "geometry":
			a.showGeometry(scopeCtx, model.ID)

		case "seed":
			a.seedGeometry(scopeCtx, model.ID)

		case "export":
			if len(args) == 0 {
				printlnFn("Usage: export <ifc|step|dwg>")
				continue
			}
			a.exportModel(scopeCtx, model.ID, args[0])

		case "materials":
			a.listMaterials(scopeCtx, model.ID)

		case "addmaterial":
			a.addMaterial(scopeCtx, model.ID)

		case "editmaterial":
			if len(args) == 0 {
				printlnFn("Usage: editmaterial <material-id>")
				continue
			}
			a.editMaterial(scopeCtx, model.ID, args[0])

		case "delmaterial":
			if len(args) == 0 {
				printlnFn("Usage: delmaterial <material-id>")
				continue
			}
			a.deleteMaterial(scopeCtx, model.ID, args[0])

		case "sections":
			a.listSections(scopeCtx, model.ID)

		case "addsection":
			a.addSection(scopeCtx, model.ID)

		case "editsection":
			if len(args) == 0 {
				printlnFn("Usage: editsection <section-id>")
				continue
			}
			a.editSection(scopeCtx, model.ID, args[0])

		case "delsection":
			if len(args) == 0 {
				printlnFn("Usage: delsection <section-id>")
				continue
			}
			a.deleteSection(scopeCtx, model.ID, args[0])

		case "back", "exit", "quit":
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
