package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "MONEV API",
        "description": "Aggregation layer between the MONEV dashboard and the SAS analytics backend",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {
            "name": "Stats",
            "description": "SAS summary statistics"
        },
        {
            "name": "ETL",
            "description": "ETL status, logs and control calls"
        },
        {
            "name": "TeacherPerformance",
            "description": "Teacher performance ETL reads and exports"
        }
    ],
    "paths": {
        "/sas/summary/stats": {
            "get": {
                "tags": [
                    "Stats"
                ],
                "summary": "Summary statistics",
                "description": "Forwards the query string unchanged. Upstream failures return zeroed data with status 500.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Upstream body",
                        "schema": {
                            "$ref": "#/definitions/StatsResponse"
                        }
                    },
                    "500": {
                        "description": "Fallback payload",
                        "schema": {
                            "$ref": "#/definitions/StatsResponse"
                        }
                    }
                }
            }
        },
        "/etl/status": {
            "get": {
                "tags": [
                    "ETL"
                ],
                "summary": "ETL process status",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/etl/logs": {
            "get": {
                "tags": [
                    "ETL"
                ],
                "summary": "ETL log history",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid paging",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Page size",
                        "default": 50
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "type": "integer",
                        "description": "Offset",
                        "default": 0
                    }
                ]
            }
        },
        "/etl/actions": {
            "get": {
                "tags": [
                    "ETL"
                ],
                "summary": "Recent ETL control calls",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Action log disabled",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Number of records",
                        "default": 20
                    }
                ]
            }
        },
        "/etl/run/full": {
            "post": {
                "tags": [
                    "ETL"
                ],
                "summary": "Start a full ETL run",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "429": {
                        "description": "Trigger rate limited",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/etl/run/incremental": {
            "post": {
                "tags": [
                    "ETL"
                ],
                "summary": "Start an incremental ETL run",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "429": {
                        "description": "Trigger rate limited",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/etl/clear-stuck": {
            "post": {
                "tags": [
                    "ETL"
                ],
                "summary": "Clear stuck ETL runs",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "429": {
                        "description": "Trigger rate limited",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/etl/force-clear": {
            "post": {
                "tags": [
                    "ETL"
                ],
                "summary": "Force-clear all in-flight ETL runs",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "429": {
                        "description": "Trigger rate limited",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/tp-etl/summary": {
            "get": {
                "tags": [
                    "TeacherPerformance"
                ],
                "summary": "Teacher performance summary",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Upstream envelope",
                        "schema": {
                            "$ref": "#/definitions/APIResponse"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "description": "Page",
                        "default": 1
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Page size",
                        "default": 10
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Search term"
                    },
                    {
                        "name": "sort_by",
                        "in": "query",
                        "type": "string",
                        "description": "Sort column"
                    },
                    {
                        "name": "sort_order",
                        "in": "query",
                        "type": "string",
                        "description": "Sort direction",
                        "default": "desc",
                        "enum": [
                            "asc",
                            "desc"
                        ]
                    }
                ]
            }
        },
        "/tp-etl/user-courses": {
            "get": {
                "tags": [
                    "TeacherPerformance"
                ],
                "summary": "Courses of one teacher",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Upstream envelope",
                        "schema": {
                            "$ref": "#/definitions/APIResponse"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Missing user_id",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "query",
                        "type": "integer",
                        "description": "Teacher user ID",
                        "required": true
                    }
                ]
            }
        },
        "/tp-etl/detail": {
            "get": {
                "tags": [
                    "TeacherPerformance"
                ],
                "summary": "Teacher performance activity rows",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Upstream envelope",
                        "schema": {
                            "$ref": "#/definitions/APIResponse"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "description": "Page",
                        "default": 1
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Page size",
                        "default": 10
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Search term"
                    },
                    {
                        "name": "sort_by",
                        "in": "query",
                        "type": "string",
                        "description": "Sort column"
                    },
                    {
                        "name": "sort_order",
                        "in": "query",
                        "type": "string",
                        "description": "Sort direction",
                        "default": "desc",
                        "enum": [
                            "asc",
                            "desc"
                        ]
                    },
                    {
                        "name": "user_id",
                        "in": "query",
                        "type": "integer",
                        "description": "Teacher user ID"
                    },
                    {
                        "name": "course_id",
                        "in": "query",
                        "type": "integer",
                        "description": "Course ID"
                    }
                ]
            }
        },
        "/tp-etl/detail/{user_id}/{course_id}/summary": {
            "get": {
                "tags": [
                    "TeacherPerformance"
                ],
                "summary": "Aggregate for one teacher and course",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "Upstream envelope",
                        "schema": {
                            "$ref": "#/definitions/APIResponse"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown teacher or course",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "user_id",
                        "in": "path",
                        "type": "integer",
                        "required": true,
                        "description": "Teacher user ID"
                    },
                    {
                        "name": "course_id",
                        "in": "path",
                        "type": "integer",
                        "required": true,
                        "description": "Course ID"
                    }
                ]
            }
        },
        "/tp-etl/summary/export": {
            "get": {
                "tags": [
                    "TeacherPerformance"
                ],
                "summary": "Export the teacher performance summary",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "description": "Export format",
                        "required": true,
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "description": "Search term"
                    },
                    {
                        "name": "sort_by",
                        "in": "query",
                        "type": "string",
                        "description": "Sort column"
                    },
                    {
                        "name": "sort_order",
                        "in": "query",
                        "type": "string",
                        "description": "Sort direction",
                        "enum": [
                            "asc",
                            "desc"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Export file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream rejected the call",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Upstream unreachable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "Pagination": {
            "type": "object",
            "properties": {
                "current_page": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                },
                "total_records": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                },
                "next_page": {
                    "type": "integer"
                },
                "prev_page": {
                    "type": "integer"
                },
                "has_next_page": {
                    "type": "boolean"
                },
                "has_prev_page": {
                    "type": "boolean"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "APIResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "status": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "status": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                }
            }
        },
        "StatsDistribution": {
            "type": "object",
            "properties": {
                "file": {
                    "type": "integer"
                },
                "video": {
                    "type": "integer"
                },
                "forum": {
                    "type": "integer"
                },
                "quiz": {
                    "type": "integer"
                },
                "assignment": {
                    "type": "integer"
                },
                "url": {
                    "type": "integer"
                }
            }
        },
        "StatsSummary": {
            "type": "object",
            "properties": {
                "total_activities": {
                    "type": "integer"
                },
                "average_score": {
                    "type": "number"
                },
                "active_users": {
                    "type": "integer"
                },
                "completion_rate": {
                    "type": "number"
                },
                "distribution": {
                    "$ref": "#/definitions/StatsDistribution"
                }
            }
        },
        "StatsResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                },
                "data": {
                    "$ref": "#/definitions/StatsSummary"
                },
                "filters": {
                    "type": "object"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
