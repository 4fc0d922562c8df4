package skribble

// Version is the SDK release version, sent in the User-Agent header of every
// API call.
const Version = "0.1.4"
