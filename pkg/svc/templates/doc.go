// Package templates manages the template files a service owns in the output directory.
//
// A service owns the files named <service>-<file suffix>.yaml for the known Istio kinds.
// Store deletes and lists those files; listing without a service covers every YAML file
// in the directory.
package templates
