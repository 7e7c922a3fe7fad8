/*
Package checklistsdk is a client for the checklists service and holds the
wire types the service itself writes.

# Client vs Session

A Client covers the unauthenticated endpoints and creates sessions:

	client := checklistsdk.NewClient("http://localhost:8080")

	health, err := client.Liveness(ctx)

	session, err := client.Register(ctx, "alice@example.com", "hunter22")
	session, err = client.Login(ctx, "alice@example.com", "hunter22")

A Session carries one session token in the x-auth header:

	list, err := session.ListChecklists(ctx)

	c, err := session.CreateChecklist(ctx, checklistsdk.CreateChecklistRequest{
		Title: "groceries",
		Items: []checklistsdk.Item{{Text: "milk"}},
	})

	done := true
	c, err = session.UpdateChecklist(ctx, c.ID, checklistsdk.UpdateChecklistRequest{Completed: &done})

	err = session.Logout(ctx)

Every user may hold several sessions at once; Logout only ends the one it is
called on.

# Errors

Failed requests return *APIError. Compare against the predefined errors with
errors.Is:

	if errors.Is(err, checklistsdk.ErrNotFound) {
		// missing or owned by someone else
	}

Validation failures carry the rejected fields in Details.
*/
package checklistsdk
