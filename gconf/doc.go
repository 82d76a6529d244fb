/*
Package gconf implements configuration loading for the native script tools.

Configuration is a JSON document. Each package reads its own section, found
under "conf" and then the package name:

	{
		"conf": {
			"nativescript": {"max_depth": 32, "max_size": 16384}
		}
	}

A configuration is always validated after it was read. Not being able to load
a valid configuration is an error the caller must not recover from silently.
*/
package gconf
