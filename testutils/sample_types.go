package testutils

// CodeSample encapsulates a snippet of source code, the file name it is
// analyzed under, and how many issues should be detected
type CodeSample struct {
	Code     string
	Filename string
	Errors   int
}
