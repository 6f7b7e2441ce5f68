/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object stored under the "_c:"
prefix followed by the extension name. The configuration is loaded from the
"conf" section of the genesis file and validated before it is written.

Not being able to get a configuration value is a critical condition for the
application. A handler that cannot load its configuration must fail the
transaction.
*/
package gconf
