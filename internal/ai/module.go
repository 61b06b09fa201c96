package ai

type Module struct {
	Svc     LLMService
	ChatSvc ChatService
	Hdl     *ChatHandler
}
