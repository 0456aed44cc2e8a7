package backend

import (
	"context"
	"net/http"

	"nerine_frontend/internal/domain/model"
)

// emptyBody satisfies the backend's requirement that mutating requests carry
// a JSON body even when there is nothing to say.
var emptyBody = struct{}{}

// DeployChallenge requests an instance of an instanced challenge for the
// calling team. Idempotence is the backend's call: repeated deploys for the
// same team+challenge pair may return the same instance, and this client
// passes that through untouched.
func (c *Client) DeployChallenge(ctx context.Context, challengeID, token string) (*model.ChallengeDeployment, error) {
	res, err := c.request(ctx, http.MethodPost, "/challs/deploy/new/"+challengeID, requestOptions{
		body:    emptyBody,
		headers: sessionCookie(token),
	})
	if err != nil {
		return nil, err
	}
	deployment, err := decode[model.ChallengeDeployment](res)
	if err != nil {
		return nil, err
	}
	return &deployment, nil
}

// DestroyChallenge tears down the calling team's instance of a challenge.
// Destruction is terminal: on success any ChallengeDeployment the caller
// still holds is stale and should be stamped with MarkDestroyed.
func (c *Client) DestroyChallenge(ctx context.Context, challengeID, token string) error {
	res, err := c.request(ctx, http.MethodDelete, "/challs/deploy/destroy/"+challengeID, requestOptions{
		body:    emptyBody,
		headers: sessionCookie(token),
	})
	if err != nil {
		return err
	}
	// success is the bare JSON string "ok"
	_, err = decode[string](res)
	return err
}

// GetChallengeDeployment reads a deployment by id. A pure read, used for
// polling while the deployment is Active.
func (c *Client) GetChallengeDeployment(ctx context.Context, deploymentID, token string) (*model.ChallengeDeployment, error) {
	res, err := c.request(ctx, http.MethodGet, "/challs/deploy/get/"+deploymentID, requestOptions{
		headers: sessionCookie(token),
	})
	if err != nil {
		return nil, err
	}
	deployment, err := decode[model.ChallengeDeployment](res)
	if err != nil {
		return nil, err
	}
	return &deployment, nil
}
