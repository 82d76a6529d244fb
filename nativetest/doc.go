/*
Package nativetest provides helpers for testing code that builds, encodes and
evaluates native scripts: mock authorization contexts, key hash fixtures and
script builders that fail the test instead of returning an error.
*/
package nativetest
