package model

// Document is the whole persisted settings state: thread id -> thread record.
// It is read and written as a single unit by the file backend.
type Document map[string]*Thread

type Thread struct {
	Users map[string]*User `json:"users" bson:"users"`
}

// User holds the commands a user is explicitly allowed to invoke in a thread.
// Permissions is treated as a set but stored as a plain slice; repeated grants
// may append duplicates.
type User struct {
	Permissions []string `json:"permissions" bson:"permissions"`
}

func (d Document) getOrCreateThread(threadID string) *Thread {
	thread, ok := d[threadID]
	if !ok {
		thread = &Thread{}
		d[threadID] = thread
	}
	if thread.Users == nil {
		thread.Users = make(map[string]*User)
	}
	return thread
}

func (t *Thread) getOrCreateUser(userID string) *User {
	user, ok := t.Users[userID]
	if !ok {
		user = &User{}
		t.Users[userID] = user
	}
	return user
}

// UserPermissions returns the stored command names for the user, or ok=false
// when the thread, the user or the permission list is absent.
func (d Document) UserPermissions(threadID string, userID string) ([]string, bool) {
	thread, ok := d[threadID]
	if !ok || thread.Users == nil {
		return nil, false
	}
	user, ok := thread.Users[userID]
	if !ok || user.Permissions == nil {
		return nil, false
	}
	return user.Permissions, true
}

// Grant appends the commands to the user's permission list, lazily creating
// the thread and user records. Existing entries are not deduplicated.
func (d Document) Grant(threadID string, userID string, commands []string) {
	user := d.getOrCreateThread(threadID).getOrCreateUser(userID)
	user.Permissions = append(user.Permissions, commands...)
}

// Revoke filters the commands out of the user's permission list and prunes
// empty records bottom-up: user, then users map, then thread.
//
// found is false when the thread, user or permission list is absent.
// changed is false when the permission list was already empty.
func (d Document) Revoke(threadID string, userID string, commands []string) (found bool, changed bool) {
	thread, ok := d[threadID]
	if !ok || thread.Users == nil {
		return false, false
	}
	user, ok := thread.Users[userID]
	if !ok || user.Permissions == nil {
		return false, false
	}
	if len(user.Permissions) == 0 {
		return true, false
	}

	kept := make([]string, 0, len(user.Permissions))
	for _, command := range user.Permissions {
		if !contains(commands, command) {
			kept = append(kept, command)
		}
	}
	user.Permissions = kept

	if len(user.Permissions) == 0 {
		delete(thread.Users, userID)
	}
	if len(thread.Users) == 0 {
		delete(d, threadID)
	}
	return true, true
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
