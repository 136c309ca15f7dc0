package redis

import "github.com/whyvineet/orthoplay-go/internal/model"

const keyPrefix = "orthoplay:"

func sessionKey(id model.SessionID) string {
	return keyPrefix + "session:" + string(id)
}
