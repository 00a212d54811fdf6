package display

import (
	"fmt"
	"io"
)

// Tree prints the project/subject/session tree for the XNAT object a tool
// is working on. An empty subject suppresses the subject and session rows;
// an empty session suppresses the session row.
func Tree(w io.Writer, project, subject, session string) {
	fmt.Fprintf(w, "Project: %s\n", project)
	if subject != "" {
		fmt.Fprintf(w, "  +Subject: %s\n", subject)
		if session != "" {
			fmt.Fprintf(w, "    *Session: %s\n", session)
		}
	}
}
