// Package fileutil provides directory enumeration and file eligibility checks
// for the search pipeline.
//
// # Purpose
//
// The fileutil package is responsible for:
//   - Enumerating every regular file under a root directory
//   - Deciding whether a single file is eligible for content scanning
//
// # Main Components
//
// ListFiles - Sequential recursive walk of the root directory:
//   - Files: every regular file found, sorted lexically
//   - Errors: non-fatal errors (permission denied, broken symlinks, missing root)
//
// Classifier - Eligibility check applied per file by the workers:
//   - Exclusion: regular expressions matched anywhere in the full path
//   - Extensions: lower-cased extension looked up in the accepted set
//     (an empty set accepts every extension)
//   - Binary sniff: a NUL byte in the first 1024 bytes rejects the file
//
// # Usage Examples
//
//	scan := fileutil.ListFiles("/path/to/project")
//	classifier, err := fileutil.NewClassifier(
//	    []string{"node_modules", `\.git`},
//	    []string{".txt", ".json"},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, path := range scan.Files {
//	    if classifier.IsSearchable(path) {
//	        fmt.Println(path)
//	    }
//	}
//
// # Error Tolerance
//
// Neither component fails a search. The walk collects errors and keeps going;
// the classifier rejects files it cannot read. Only an invalid exclusion
// pattern is reported, at construction time.
package fileutil
