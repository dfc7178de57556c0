// Package docs holds the generated OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Authenticate a staff member and issue a JWT",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a staff account",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/categories": {
            "get": {
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["categories"],
                "summary": "Create a category",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/participants": {
            "get": {
                "tags": ["participants"],
                "summary": "List participants with optional category, gender and name filters",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["participants"],
                "summary": "Register a participant",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/pairs": {
            "get": {
                "tags": ["pairs"],
                "summary": "List pairs",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["pairs"],
                "summary": "Form a pair from two participants",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Players do not satisfy the division"}
                }
            }
        },
        "/pairs/randomize": {
            "post": {
                "tags": ["pairs"],
                "summary": "Propose random pairings for a set of participants",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tournaments": {
            "get": {
                "tags": ["tournaments"],
                "summary": "List tournaments",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["tournaments"],
                "summary": "Create a tournament",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/tournaments/{tournamentID}": {
            "get": {
                "tags": ["tournaments"],
                "summary": "Tournament detail with entries, matches and standings",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tournaments/{tournamentID}/standings": {
            "get": {
                "tags": ["tournaments"],
                "summary": "Current standings, optionally for a single group",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tournaments/{tournamentID}/groups": {
            "post": {
                "tags": ["tournaments"],
                "summary": "Split enrolled pairs into groups",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tournaments/{tournamentID}/knockout/advance": {
            "post": {
                "tags": ["tournaments"],
                "summary": "Generate the next knockout round",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Current round is unfinished"}
                }
            }
        },
        "/matches/{matchID}/result": {
            "put": {
                "tags": ["matches"],
                "summary": "Record or overwrite a match result set by set",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid set or tie-break score"}
                }
            }
        },
        "/quick-tournaments": {
            "post": {
                "tags": ["quick"],
                "summary": "Create an arrive-and-play tournament from a pasted player list",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/quick-tournaments/{publicID}/finalize": {
            "post": {
                "tags": ["quick"],
                "summary": "Freeze the tournament and record the podium",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "No matches recorded yet"}
                }
            }
        },
        "/sponsors/{sponsorID}/logo": {
            "post": {
                "tags": ["sponsors"],
                "summary": "Upload a sponsor logo as multipart form data",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Unsupported file type"}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["dashboard"],
                "summary": "Club dashboard: counts, recent bagels and the champion wall",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Beach Tennis Club API",
	Description:      "Administration API for a beach tennis club: participants, pairs, tournaments, match results and live standings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
