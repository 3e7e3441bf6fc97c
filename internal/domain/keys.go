package domain

// KeyPrefix namespaces every key resumedex writes to the store.
const KeyPrefix = "resumedex:"
