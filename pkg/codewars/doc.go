// Package codewars provides a client for the public Codewars REST API.
//
// Only the user endpoint is used. It supplies the honor, rank and
// per-language data shown in the generated README.
//
// Example usage:
//
//	client := codewars.NewClient(codewars.Options{Timeout: 30 * time.Second})
//
//	profile, err := client.FetchUser(ctx, "jdoe")
//	if err != nil {
//	    if errs.Is(err, errs.ErrorTypeNotFound) {
//	        // unknown user
//	    }
//	}
package codewars
