package entity

import "strings"

// Document is the single aggregate of every collection plus the session
// state. It is persisted and replicated as one unit; mutation operations
// never modify it in place, they clone it, edit the clone and commit.
type Document struct {
	Users         []User         `json:"users"`
	FoodItems     []FoodItem     `json:"foodItems"`
	Orders        []Order        `json:"orders"`
	Chats         []ChatMessage  `json:"chats"`
	Reviews       []Review       `json:"reviews"`
	Notifications []Notification `json:"notifications"`
	CurrentUser   *User          `json:"currentUser"`

	// Version counts commits since the document was first created. It does
	// not change replication semantics (last writer still wins); it only
	// makes overwrites of newer state visible in logs.
	Version int64 `json:"version"`
}

// Empty returns the initial document used when the durable slot is absent
// or unreadable.
func Empty() *Document {
	return &Document{
		Users:         []User{},
		FoodItems:     []FoodItem{},
		Orders:        []Order{},
		Chats:         []ChatMessage{},
		Reviews:       []Review{},
		Notifications: []Notification{},
		CurrentUser:   nil,
	}
}

// Clone returns a deep copy safe to edit without touching the original.
func (d *Document) Clone() *Document {
	c := &Document{
		Users:         make([]User, len(d.Users)),
		FoodItems:     append([]FoodItem(nil), d.FoodItems...),
		Orders:        append([]Order(nil), d.Orders...),
		Chats:         append([]ChatMessage(nil), d.Chats...),
		Reviews:       append([]Review(nil), d.Reviews...),
		Notifications: append([]Notification(nil), d.Notifications...),
		Version:       d.Version,
	}
	for i, u := range d.Users {
		u.Following = append([]string(nil), u.Following...)
		u.Followers = append([]string(nil), u.Followers...)
		c.Users[i] = u
	}
	if d.CurrentUser != nil {
		cu := *d.CurrentUser
		cu.Following = append([]string(nil), cu.Following...)
		cu.Followers = append([]string(nil), cu.Followers...)
		c.CurrentUser = &cu
	}
	return c
}

// FindUser returns a pointer into the document's user slice, or nil.
func (d *Document) FindUser(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByEmail matches case-insensitively.
func (d *Document) FindUserByEmail(email string) *User {
	for i := range d.Users {
		if strings.EqualFold(d.Users[i].Email, email) {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) FindFood(id string) *FoodItem {
	for i := range d.FoodItems {
		if d.FoodItems[i].ID == id {
			return &d.FoodItems[i]
		}
	}
	return nil
}

func (d *Document) FindOrder(id string) *Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}

func (d *Document) FindMessage(id string) *ChatMessage {
	for i := range d.Chats {
		if d.Chats[i].ID == id {
			return &d.Chats[i]
		}
	}
	return nil
}

func (d *Document) FindReview(id string) *Review {
	for i := range d.Reviews {
		if d.Reviews[i].ID == id {
			return &d.Reviews[i]
		}
	}
	return nil
}

func (d *Document) FindNotification(id string) *Notification {
	for i := range d.Notifications {
		if d.Notifications[i].ID == id {
			return &d.Notifications[i]
		}
	}
	return nil
}

// SyncCurrentUser refreshes the session copy of the logged-in user after
// the users slice changed. The session survives even if the user record
// itself was replaced.
func (d *Document) SyncCurrentUser() {
	if d.CurrentUser == nil {
		return
	}
	if u := d.FindUser(d.CurrentUser.ID); u != nil {
		cu := *u
		cu.Following = append([]string(nil), u.Following...)
		cu.Followers = append([]string(nil), u.Followers...)
		d.CurrentUser = &cu
	}
}
