package git

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CredentialApprove stores a credential with the configured credential
// helper. When url is non-empty the credential is scoped to that URL,
// otherwise to the host. Fire-and-forget.
func (Client) CredentialApprove(username, token, host, url string) {
	runCredential("approve", credentialInput(username, token, host, url))
}

// CredentialReject evicts any stored credential for the host. Must run
// before approving a replacement so a stale entry cannot shadow it.
func (Client) CredentialReject(host string) {
	runCredential("reject", credentialInput("", "", host, ""))
}

// credentialInput builds the key=value payload for git credential.
// The trailing blank line terminates the input.
func credentialInput(username, token, host, url string) string {
	var b strings.Builder
	if url != "" {
		fmt.Fprintf(&b, "url=%s\n", url)
	} else {
		b.WriteString("protocol=https\n")
		fmt.Fprintf(&b, "host=%s\n", host)
	}
	if username != "" {
		fmt.Fprintf(&b, "username=%s\n", username)
	}
	if token != "" {
		fmt.Fprintf(&b, "password=%s\n", token)
	}
	b.WriteString("\n")
	return b.String()
}

func runCredential(verb, input string) {
	cmd := exec.Command("git", "credential", verb)
	cmd.Stdin = strings.NewReader(input)
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: git credential %s failed: %v\n", verb, err)
	}
}
