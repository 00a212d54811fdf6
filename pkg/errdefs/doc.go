// Package errdefs defines the shared error vocabulary for the XNAT
// command-line tools.
//
// Two kinds are distinguished: ToolError for internal or programming
// errors, and UserError for errors caused by user input, always tagged
// with the name of the tool that raised them so the failure can be
// attributed when several tools share a pipeline.
package errdefs
