// Package fileutil holds the small file helpers the XNAT tools share: line
// lists read from user-supplied text files and reports written out as text
// or CSV.
//
// The helpers distinguish "no file requested" from "empty file": an empty
// path is not an error and yields no lines, while a path that does not
// exist is a user error naming the tool that needed the file. Writers
// require the parent directory to exist; they do not create directory
// trees on the user's behalf.
package fileutil
