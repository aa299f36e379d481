// Package services contains the application services of the FitTrack
// client: authentication, goals and dashboard statistics.
//
// Services validate input before any network call, talk to the backend via
// package api and return display data already passed through package
// sanitize.
package services
