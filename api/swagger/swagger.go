package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Colleague Student API",
        "description": "Student reference data and section transactions over the ERP replica",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Reference", "description": "Read-only reference codes"},
        {"name": "Attendance", "description": "Section meeting attendance"},
        {"name": "Registration", "description": "Registration options"},
        {"name": "Course placeholders", "description": "Academic plan placeholders"},
        {"name": "Sections", "description": "Section permissions and textbooks"},
        {"name": "EEDM", "description": "Integration-model resources without data"},
        {"name": "Ops", "description": "Health and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Ops"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "tags": ["Ops"],
                "summary": "Readiness check",
                "responses": {"200": {"description": "Ready"}, "503": {"description": "A dependency is unavailable"}}
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Ops"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/{resource}": {
            "get": {
                "tags": ["Reference"],
                "summary": "List a reference resource",
                "description": "Integration-model resources always answer with an empty array.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "resource",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "cap-sizes",
                            "gown-sizes",
                            "degrees",
                            "majors",
                            "minors",
                            "class-levels",
                            "credit-types",
                            "drop-reasons",
                            "session-cycles",
                            "yearly-cycles",
                            "grade-subschemes",
                            "specializations",
                            "student-loads",
                            "transcript-categories",
                            "petition-statuses",
                            "student-petition-reasons",
                            "attendance-types",
                            "administrative-periods",
                            "instructional-delivery-methods",
                            "student-tags",
                            "student-admission-decisions"
                        ]
                    },
                    {"name": "Cache-Control", "in": "header", "type": "string", "description": "no-cache bypasses the backend cache"},
                    {"name": "X-Media-Type", "in": "header", "type": "string", "description": "application/vnd.hedtech.integration.v1+json"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/ReferenceCode"}}
                    },
                    "400": {"description": "Backend data fault", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "406": {"description": "Media type not supported", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["EEDM"],
                "summary": "Create an integration-model resource",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "resource",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": ["administrative-periods", "instructional-delivery-methods", "student-tags", "student-admission-decisions"]
                    }
                ],
                "responses": {
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "405": {"description": "Operation not supported", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/{resource}/{id}": {
            "get": {
                "tags": ["Reference"],
                "summary": "Get a reference code",
                "description": "Integration-model resources always answer 404.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "resource",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "cap-sizes",
                            "gown-sizes",
                            "degrees",
                            "majors",
                            "minors",
                            "class-levels",
                            "credit-types",
                            "drop-reasons",
                            "session-cycles",
                            "yearly-cycles",
                            "grade-subschemes",
                            "specializations",
                            "student-loads",
                            "transcript-categories",
                            "petition-statuses",
                            "student-petition-reasons",
                            "attendance-types",
                            "administrative-periods",
                            "instructional-delivery-methods",
                            "student-tags",
                            "student-admission-decisions"
                        ]
                    },
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "Cache-Control", "in": "header", "type": "string", "description": "no-cache bypasses the backend cache"},
                    {"name": "X-Media-Type", "in": "header", "type": "string", "description": "application/vnd.hedtech.integration.v1+json"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ReferenceCode"}},
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "put": {
                "tags": ["EEDM"],
                "summary": "Update an integration-model resource",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "resource",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": ["administrative-periods", "instructional-delivery-methods", "student-tags", "student-admission-decisions"]
                    },
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "405": {"description": "Operation not supported", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["EEDM"],
                "summary": "Delete an integration-model resource",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "resource",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": ["administrative-periods", "instructional-delivery-methods", "student-tags", "student-admission-decisions"]
                    },
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "405": {"description": "Operation not supported", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/section-attendances": {
            "put": {
                "tags": ["Attendance"],
                "summary": "Record attendance for a section meeting",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SectionAttendance"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SectionAttendanceResponse"}},
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "500": {"description": "Backend data fault", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/qapi/student-attendances": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Query student attendances of a section",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentAttendanceQueryCriteria"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentAttendance"}}
                    },
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/students/{id}/registration-options": {
            "get": {
                "tags": ["Registration"],
                "summary": "Get a student's registration options",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RegistrationOptions"}},
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/qapi/registration-options": {
            "post": {
                "tags": ["Registration"],
                "summary": "Query registration options",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegistrationOptionsQueryCriteria"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/RegistrationOptions"}}
                    },
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/course-placeholders/{id}": {
            "get": {
                "tags": ["Course placeholders"],
                "summary": "Get a course placeholder",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "Cache-Control", "in": "header", "type": "string", "description": "no-cache bypasses the backend cache"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CoursePlaceholder"}},
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/qapi/course-placeholders": {
            "post": {
                "tags": ["Course placeholders"],
                "summary": "Query course placeholders",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CoursePlaceholderQueryCriteria"}},
                    {"name": "Cache-Control", "in": "header", "type": "string", "description": "no-cache bypasses the backend cache"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/CoursePlaceholder"}}
                    },
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/sections/{id}/permissions": {
            "get": {
                "tags": ["Sections"],
                "summary": "Get section petitions and faculty consents",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SectionPermission"}},
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "500": {"description": "Backend data fault", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/sections/{id}/textbooks": {
            "put": {
                "tags": ["Sections"],
                "summary": "Replace section textbooks",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SectionTextbookAssignment"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SectionTextbooks"}},
                    "401": {"description": "Session expired or missing token", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "500": {"description": "Backend data fault", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "status": {"type": "integer"}}
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/APIError"}}
        },
        "ReferenceCode": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "description": {"type": "string"}}
        },
        "MeetingInstance": {
            "type": "object",
            "properties": {
                "instanceId": {"type": "string"},
                "instructionalMethod": {"type": "string"},
                "meetingDate": {"type": "string", "format": "date-time"},
                "startTime": {"type": "string", "format": "date-time"},
                "endTime": {"type": "string", "format": "date-time"}
            }
        },
        "StudentAttendance": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "sectionId": {"type": "string"},
                "studentCourseSectionId": {"type": "string"},
                "meetingDate": {"type": "string", "format": "date-time"},
                "attendanceCategoryCode": {"type": "string"},
                "minutesAttended": {"type": "integer"},
                "comment": {"type": "string"}
            }
        },
        "SectionAttendance": {
            "type": "object",
            "properties": {
                "sectionId": {"type": "string"},
                "meetingInstance": {"$ref": "#/definitions/MeetingInstance"},
                "studentAttendances": {"type": "array", "items": {"$ref": "#/definitions/StudentAttendance"}}
            }
        },
        "SectionAttendanceResponse": {
            "type": "object",
            "properties": {
                "sectionId": {"type": "string"},
                "meetingInstance": {"$ref": "#/definitions/MeetingInstance"},
                "updatedStudentCourseSectionAttendances": {"type": "array", "items": {"$ref": "#/definitions/StudentAttendance"}},
                "studentCourseSectionsWithErrors": {"type": "array", "items": {"type": "string"}}
            }
        },
        "StudentAttendanceQueryCriteria": {
            "type": "object",
            "properties": {
                "sectionId": {"type": "string"},
                "studentIds": {"type": "array", "items": {"type": "string"}}
            }
        },
        "RegistrationOptions": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "gradingTypes": {"type": "array", "items": {"type": "string"}}
            }
        },
        "RegistrationOptionsQueryCriteria": {
            "type": "object",
            "properties": {
                "studentIds": {"type": "array", "items": {"type": "string"}}
            }
        },
        "CoursePlaceholder": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "creditsText": {"type": "string"},
                "catalogYear": {"type": "string"},
                "startDate": {"type": "string", "format": "date-time"},
                "endDate": {"type": "string", "format": "date-time"}
            }
        },
        "CoursePlaceholderQueryCriteria": {
            "type": "object",
            "properties": {
                "ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "SectionPetition": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "sectionId": {"type": "string"},
                "studentId": {"type": "string"},
                "statusCode": {"type": "string"},
                "reasonCode": {"type": "string"},
                "comment": {"type": "string"},
                "updatedBy": {"type": "string"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "SectionPermission": {
            "type": "object",
            "properties": {
                "sectionId": {"type": "string"},
                "studentPetitions": {"type": "array", "items": {"$ref": "#/definitions/SectionPetition"}},
                "facultyConsents": {"type": "array", "items": {"$ref": "#/definitions/SectionPetition"}}
            }
        },
        "SectionTextbook": {
            "type": "object",
            "properties": {
                "bookId": {"type": "string"},
                "requirementStatus": {"type": "string", "enum": ["required", "recommended", "optional"]},
                "comment": {"type": "string"},
                "assignedBy": {"type": "string"},
                "assignedAt": {"type": "string", "format": "date-time"}
            }
        },
        "SectionTextbookAssignment": {
            "type": "object",
            "properties": {
                "textbooks": {"type": "array", "items": {"$ref": "#/definitions/SectionTextbook"}}
            }
        },
        "SectionTextbooks": {
            "type": "object",
            "properties": {
                "sectionId": {"type": "string"},
                "textbooks": {"type": "array", "items": {"$ref": "#/definitions/SectionTextbook"}}
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
