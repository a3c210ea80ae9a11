// Package codereadr provides a client for the CodeReadr XML API.
//
// Every call is a form-encoded POST of api_key, section and action plus
// optional extra fields. CodeReadr answers HTTP 200 even when the call
// failed, so the client inspects the status element of the returned
// document and turns anything other than 1 into an *APIError.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client := codereadr.NewClient("your-api-key", logger,
//		codereadr.WithTimeout(10*time.Second),
//	)
//
//	resp, err := client.Request(ctx, codereadr.SectionUsers, codereadr.ActionRetrieve, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, user := range resp.Root().SelectElements("user") {
//		fmt.Println(user.SelectAttrValue("id", ""), user.FindElement("username").Text())
//	}
//
// Sections and actions are typed strings with named constants for the
// documented vocabulary. Unknown values are forwarded unchanged and left to
// the server to reject.
//
// # Error Handling
//
//   - *APIError: the server reported a logical failure (status != 1)
//   - *StatusError: the HTTP response was not 2xx
//   - *ParseError: the body was not a usable XML document
//   - anything else: the HTTP client failed, wrapped with %w
//
// Distinguish them with errors.As:
//
//	var apiErr *codereadr.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Println("rejected:", apiErr.Message)
//	}
//
// The client holds no mutable state and adds no retries. Concurrent use is
// safe as long as the HTTP client is.
package codereadr
