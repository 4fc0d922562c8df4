// Package schema defines the request and response shapes of the Skribble API.
//
// The types are plain data carriers with json tags; the API itself validates
// business rules, so none are enforced here.
package schema
