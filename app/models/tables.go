package models

// Tables lists every model migrated at startup.
var Tables = []any{
	&User{},
	&Product{},
	&CartItem{},
	&Order{},
	&OrderItem{},
	&SocialAccount{},
	&ScheduledPost{},
}
