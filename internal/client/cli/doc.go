// Package cli provides the interactive KeyFold command-line client.
//
// It wires configuration, the gRPC API client, and an interactive REPL.
// Typical flow: unlock the passphrase-sealed identity, attach an access
// token, and execute conversation commands.
//
// Key features:
//   - Unlock / create a local member identity
//   - Create conversations, fetch and recover epoch key chains
//   - Rotate epochs; add and remove members and invite links
//   - Seal and exchange attachments through presigned URLs
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
