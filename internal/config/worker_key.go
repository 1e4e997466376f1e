package config

type WorkerKeyStruct struct {
	ChatProvisionQueue    string
	ClassmateRefreshQueue string
}

var WorkerKey = &WorkerKeyStruct{
	ChatProvisionQueue:    "chat_provision_queue",
	ClassmateRefreshQueue: "classmate_refresh_queue",
}
