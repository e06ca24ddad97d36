package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/whisperkit/audio"
	apperrors "github.com/skillsenselab/whisperkit/errors"
	"github.com/skillsenselab/whisperkit/logger"
	"github.com/skillsenselab/whisperkit/transcription"
)

// RegisterTranscription mounts the transcription API on the server's Gin
// engine. The endpoint accepts a multipart upload with an "audio" file part
// holding mono 16kHz 16-bit PCM WAV data, plus optional "language" and
// "translate" form fields.
func (s *Server) RegisterTranscription(p transcription.Provider) {
	s.engine.POST("/api/transcribe", transcribeHandler(p, s.log))
}

func transcribeHandler(p transcription.Provider, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("audio")
		if err != nil {
			RespondWithError(c, apperrors.MissingField("audio"))
			return
		}

		file, err := header.Open()
		if err != nil {
			RespondWithError(c, apperrors.InvalidAudio("unreadable upload"))
			return
		}
		defer file.Close()

		samples, err := audio.DecodeWAV(file)
		if err != nil {
			RespondWithError(c, err)
			return
		}

		req := transcription.Request{
			Samples:  samples,
			Language: c.PostForm("language"),
		}
		if v := c.PostForm("translate"); v != "" {
			translate, err := strconv.ParseBool(v)
			if err != nil {
				RespondWithError(c, apperrors.InvalidInput("translate", "must be a boolean"))
				return
			}
			req.Translate = translate
		}

		start := time.Now()
		res, err := p.Transcribe(c.Request.Context(), req)
		if err != nil {
			log.Error("Transcription failed", logger.ErrorFields("transcribe", err))
			RespondWithError(c, err)
			return
		}

		log.Info("Transcription completed", map[string]interface{}{
			logger.FieldSamples:  len(samples),
			logger.FieldSegments: len(res.Segments),
			logger.FieldDuration: time.Since(start).Milliseconds(),
		})
		RespondOK(c, res)
	}
}
