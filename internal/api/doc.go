// Package api contains the HTTP handlers, request/response models, and
// error mapping for the task-tracking service. Handlers stay thin: they
// decode and validate input, call into stores and services, and translate
// the outcome into a sanitized JSON response.
package api
