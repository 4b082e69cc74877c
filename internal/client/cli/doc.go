// Package cli provides the interactive StruMind console client.
//
// It wires configuration, local storage, the API client, and an interactive
// REPL gated on authentication state. Typical flow: restore a persisted
// session, then browse projects, open a model workspace, run analyses and
// design checks against the platform.
//
// Key features:
//   - Login / Logout with a locally persisted session token
//   - Project and structural-model browsing with a local query cache
//   - Analysis job submission, status polling, cancellation, results
//   - Design checks, optimization, detailing summaries
//   - BIM geometry viewing/export and a textual model canvas
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
