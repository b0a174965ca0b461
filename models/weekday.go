package models

// Weekdays is the closed set of accepted working days, in display order.
var Weekdays = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}
