package v1

// BasePath is the URL prefix all v1 routes are mounted under
const BasePath = "/api/v1"
