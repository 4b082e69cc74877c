package queries

// Query keys mirror the entity hierarchy so that prefix invalidation drops
// a whole scope at once (e.g. everything under one model).

func ProjectsKey() string { return "projects" }

func ProjectKey(projectID string) string { return "project/" + projectID }

func ProjectModelsKey(projectID string) string { return "project/" + projectID + "/models" }

func ModelKey(modelID string) string { return "model/" + modelID }

func ModelResultsKey(modelID string) string { return "model/" + modelID + "/results" }

func DesignResultsKey(modelID string) string { return "model/" + modelID + "/design" }

func MaterialsKey(modelID string) string { return "model/" + modelID + "/materials" }

func SectionsKey(modelID string) string { return "model/" + modelID + "/sections" }

func GeometryKey(modelID string) string { return "model/" + modelID + "/geometry" }
