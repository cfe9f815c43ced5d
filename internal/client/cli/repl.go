package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isUnlocked() bool
	Unlock(ctx context.Context) error
	Token(ctx context.Context) error
	Ping(ctx context.Context) error
	Create(ctx context.Context) error
	KeyChain(ctx context.Context) error
	Members(ctx context.Context) error
	Rotate(ctx context.Context) error
	AddMember(ctx context.Context) error
	RemoveMember(ctx context.Context) error
	AddLink(ctx context.Context) error
	RevokeLink(ctx context.Context) error
	LinkPrivilege(ctx context.Context) error
	Upload(ctx context.Context) error
	Download(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the KeyFold CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// While the identity is locked, help offers only unlock, token, ping and
// exit; the full command set opens up after a successful unlock.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("kf> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isUnlocked() {
				printlnFn("Available commands: create, (k)eychain, members, rotate, addmember, removemember, addlink, revokelink, linkpriv, upload, download, token, ping, exit")
			} else {
				printlnFn("Available commands: unlock, token, ping, exit")
			}

		case "unlock":
			_ = a.Unlock(ctx)

		case "token":
			_ = a.Token(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "create":
			_ = a.Create(ctx)

		case "k", "keychain":
			_ = a.KeyChain(ctx)

		case "members":
			_ = a.Members(ctx)

		case "rotate":
			_ = a.Rotate(ctx)

		case "addmember":
			_ = a.AddMember(ctx)

		case "removemember":
			_ = a.RemoveMember(ctx)

		case "addlink":
			_ = a.AddLink(ctx)

		case "revokelink":
			_ = a.RevokeLink(ctx)

		case "linkpriv":
			_ = a.LinkPrivilege(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "download":
			_ = a.Download(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
