package chat

// MaxMessageRunes caps a single user message.
const MaxMessageRunes = 2000
