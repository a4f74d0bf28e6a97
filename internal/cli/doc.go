// Package cli is responsible for parsing the goesproc command line,
// validating user input, and describing process-level outcomes like exit
// codes. It translates flags into the application's configuration and hands
// back the positional paths it did not consume.
package cli
