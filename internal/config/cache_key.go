package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key for a user's active session JTI.
func (r *CacheKeyStruct) UserSessionKey(userID string) string {
	return fmt.Sprintf("login:%s", userID)
}

// ClassmatesKey returns the cache key for a user's classmates in one class.
func (r *CacheKeyStruct) ClassmatesKey(userID, classID string) string {
	return fmt.Sprintf("user:%s:class:%s:classmates", userID, classID)
}

// AllClassmatesKey returns the cache key for a user's aggregated classmates
// across their full schedule.
func (r *CacheKeyStruct) AllClassmatesKey(userID string) string {
	return fmt.Sprintf("user:%s:classmates", userID)
}

// UserEnrollmentsKey returns the cache key for a user's active enrollments.
func (r *CacheKeyStruct) UserEnrollmentsKey(userID string) string {
	return fmt.Sprintf("user:%s:enrollments", userID)
}

// ClassRosterVersionKey returns the version counter key bumped whenever a
// class's roster changes. Cached classmate payloads embed the version they
// were built against.
func (r *CacheKeyStruct) ClassRosterVersionKey(classID string) string {
	return fmt.Sprintf("class:%s:roster_version", classID)
}

// ChatChannel returns the Redis PubSub channel name for a class chat.
func (r *CacheKeyStruct) ChatChannel(chatID string) string {
	return fmt.Sprintf("chat:%s:stream", chatID)
}

var CacheKey = NewCacheKeyStruct()
