package utils

import "github.com/gin-gonic/gin"

const actorKey = "actor"

// Actor is the authenticated admin identity attached to a request.
// A nil actor means anonymous.
type Actor struct {
	ID       uint
	FullName string
}

func SetActor(c *gin.Context, actor *Actor) {
	c.Set(actorKey, actor)
}

func CurrentAdmin(c *gin.Context) *Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(*Actor); ok {
			return actor
		}
	}
	return nil
}
