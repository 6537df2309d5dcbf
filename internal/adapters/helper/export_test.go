package helper

// AskpassScript exposes the prompt hook body for assertions.
const AskpassScript = askpassScript

// ClassifyElevated exposes the sudo failure classifier.
var ClassifyElevated = classifyElevated
