// Package config loads the dishctl configuration from dish.json and the
// environment.
//
// The file is looked up in $DHIS_HOME, then the user home directory,
// then the working directory. Environment variables take precedence
// over file values; the sources are merged with mergo and validated
// once, at startup, by [Load]. The resulting [Config] is immutable and
// handed to the components that need it by injection.
package config
