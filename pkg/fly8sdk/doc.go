/*
Package fly8sdk holds the wire types of the Fly8 API together with a small
HTTP client.

The same types are used by the server to decode requests and encode
responses, so a change here is a change to the public contract.

# Client

	c := fly8sdk.NewClient("http://localhost:8080")

	auth, err := c.Signup(ctx, fly8sdk.SignupRequest{
		Email:     "a@b.com",
		Password:  "pw123456",
		FirstName: "A",
		LastName:  "B",
	})
	if err != nil {
		return err
	}

	student := c.WithToken(auth.Token)
	me, err := student.Me(ctx)

# Errors

Every failed call returns an *APIError carrying the HTTP status and a stable
Kind. The predefined values work with errors.Is:

	_, err := c.Login(ctx, email, password)
	if errors.Is(err, fly8sdk.ErrInvalidCredentials) {
		// unknown email or wrong password, the API does not say which
	}

Expired and tampered tokens both answer 401 but differ in Kind
(KindTokenExpired vs KindInvalidToken), so a client can prompt for a new
login instead of treating the session as hostile.
*/
package fly8sdk
