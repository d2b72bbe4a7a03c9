// Package language normalizes the language and region codes TMDB accepts.
//
// TMDB expects ISO 639-1 languages optionally followed by an ISO 3166-1
// region ("pt-BR"). Users type all sorts of variants ("pt_br", "por",
// "portuguese"); everything is funneled through here before it reaches a
// request or the config file.
package language
