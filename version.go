package finlog

// Version is the library's semantic version.
const Version = "0.9.0"
