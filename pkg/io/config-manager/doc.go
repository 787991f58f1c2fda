// Package configmanager defines the configuration loading contract shared by config managers.
package configmanager
