package internal

// Version is the current hunapertium release.
const Version = "0.3.0"
