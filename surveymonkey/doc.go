// Package surveymonkey provides a client for the SurveyMonkey v3 REST API.
//
// The client covers the OAuth2 authorization-code flow and the survey,
// page, question, response, webhook, group and user endpoints. Survey and
// response payloads whose shape varies by question family are passed through
// as raw JSON rather than modeled.
//
// # Usage
//
// Create a client with your app credentials, then complete OAuth before
// making API calls:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := surveymonkey.New(clientID, clientSecret, redirectURI, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Direct the user to the authorization URL, then exchange the code.
//	fmt.Println(client.AuthCodeURL())
//	token, err := client.ExchangeCode(ctx, code)
//	if err != nil {
//		log.Fatal(err)
//	}
//	client.SetToken(token)
//
//	surveys, err := client.ListAllSurveys(ctx, nil)
//
// If an access token is already known, pass it at construction with
// surveymonkey.WithAccessToken.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError. SurveyMonkey's numeric error
// codes are mapped onto classification errors (ErrAuthorization, ErrNotFound,
// ErrRateLimited, ...) reachable through errors.Is:
//
//	if errors.Is(err, surveymonkey.ErrRateLimited) {
//		// back off
//	}
package surveymonkey
