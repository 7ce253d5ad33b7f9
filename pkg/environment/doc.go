// Package environment names the deployment environments the service knows
// about and normalizes the values read from APP_ENV.
package environment
