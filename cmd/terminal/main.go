package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"krishi-sakhi/internal/app"
	"krishi-sakhi/internal/chat"
	"krishi-sakhi/internal/langtag"
	"krishi-sakhi/internal/speech"
	"krishi-sakhi/internal/store"
)

// inputMode is the closed set of things a line of input can mean.
type inputMode int

const (
	modeText inputMode = iota
	modeSpeak
	modeExit
)

// classifyInput maps one line of input to its mode. Sentinels are matched
// case-insensitively; everything else is a typed query.
func classifyInput(line string) (inputMode, string) {
	trimmed := strings.TrimSpace(line)
	switch strings.ToLower(trimmed) {
	case "exit":
		return modeExit, ""
	case "speak":
		return modeSpeak, ""
	default:
		return modeText, trimmed
	}
}

// voice bundles the speech stack so the chat loop takes one dependency.
type voice struct {
	capturer    speech.Capturer
	recognizer  speech.Recognizer
	synthesizer speech.Synthesizer
	player      speech.Player
}

func main() {
	deps, err := app.Build("text")
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, "      Welcome to Krishi Sakhi!")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	paths := collectPDFPaths(in, out)
	kb, _ := deps.Loader.Load(paths)
	if strings.TrimSpace(kb.Text) == "" {
		deps.Log.Error("could not extract any text from the provided PDFs")
		os.Exit(1)
	}

	svc := chat.NewService(deps.Log, kb, deps.LLM, deps.Cache, deps.Store,
		time.Duration(deps.Config.CacheTTL)*time.Second)

	capturer, recognizer, synthesizer, player := app.BuildSpeech(deps.Config)
	v := voice{capturer: capturer, recognizer: recognizer, synthesizer: synthesizer, player: player}

	fmt.Fprintln(out, "\nYou can now start chatting with Krishi Sakhi.")
	fmt.Fprintln(out, "Type your message or say 'speak' to use your voice.")
	fmt.Fprintln(out, "Type 'exit' to end the conversation.")

	chatLoop(context.Background(), deps.Log, in, out, svc, v)

	fmt.Fprintln(out, "\nThank you for using Krishi Sakhi. Have a great day!")
}

// collectPDFPaths prompts for document paths until the operator enters
// "done". Each path must exist and end in .pdf; at least one valid path is
// required before the sentinel is accepted.
func collectPDFPaths(in *bufio.Scanner, out io.Writer) []string {
	var paths []string
	fmt.Fprintln(out, "Please provide the paths to your agricultural PDF files.")
	fmt.Fprintln(out, "Enter the full path for each file and press Enter. Type 'done' when you are finished.")
	for {
		fmt.Fprintf(out, "PDF File %d: ", len(paths)+1)
		if !in.Scan() {
			return paths
		}
		path := strings.TrimSpace(in.Text())
		if strings.EqualFold(path, "done") {
			if len(paths) == 0 {
				fmt.Fprintln(out, "No PDF files were provided. The chatbot needs at least one to work.")
				continue
			}
			return paths
		}
		if validPDFPath(path) {
			paths = append(paths, path)
		} else {
			fmt.Fprintln(out, "Invalid file path or not a PDF. Please try again.")
		}
	}
}

func validPDFPath(path string) bool {
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func chatLoop(ctx context.Context, log *slog.Logger, in *bufio.Scanner, out io.Writer, svc *chat.Service, v voice) {
	for {
		fmt.Fprint(out, "\nYou: ")
		if !in.Scan() {
			return
		}

		mode, query := classifyInput(in.Text())
		var lang langtag.Lang

		switch mode {
		case modeExit:
			return
		case modeSpeak:
			fmt.Fprintln(out, "\nListening... (Speak now)")
			spoken, spokenLang, err := speech.Listen(ctx, v.capturer, v.recognizer)
			if err != nil {
				fmt.Fprintln(out, "Sorry, I could not understand the audio.")
				continue
			}
			fmt.Fprintf(out, "Heard (%s): %s\n", spokenLang, spoken)
			query, lang = spoken, spokenLang
		case modeText:
			if query == "" {
				continue
			}
			lang = langtag.DetectTyped(query)
		}

		resp := svc.Ask(ctx, query, store.SourceTerminal)
		speakReply(ctx, log, out, v, resp, lang)
	}
}

// speakReply prints the reply and plays it aloud. The reply's own language
// marker wins over the detected input language when choosing a voice; an
// untagged reply falls back to the input language. Any synthesis or
// playback failure leaves the printed text as the answer.
func speakReply(ctx context.Context, log *slog.Logger, out io.Writer, v voice, resp chat.Response, inputLang langtag.Lang) {
	lang := resp.Lang
	if !resp.Tagged && inputLang != "" {
		lang = inputLang
	}
	fmt.Fprintf(out, "Krishi Sakhi (%s): %s\n", lang, resp.Text)

	audio, err := v.synthesizer.Synthesize(ctx, resp.Text, lang)
	if err != nil {
		log.Warn("text-to-speech failed", "err", err)
		return
	}
	if err := v.player.Play(ctx, audio); err != nil {
		log.Warn("audio playback failed", "err", err)
	}
}
