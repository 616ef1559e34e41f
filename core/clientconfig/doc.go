// Package clientconfig resolves the client's connection settings. Values are
// layered: built-in defaults, then an optional YAML config file in the user
// config directory, then environment variables (with .env support). Later
// layers win.
//
// The config file holds only connection settings; session state lives in the
// token store.
package clientconfig
