// Package domain contains the entities of the scan scheduling application:
// patients, their pregnancy schedules, the configurable scan types and the
// reminders derived from them. The types carry no infrastructure concerns and
// are shared by storage, service and transport packages.
package domain
